package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/domain/identity"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc     func(ctx context.Context, r *gatepass.Request) error
	UpdateFunc   func(ctx context.Context, r *gatepass.Request, expectedStatus vo.RequestStatus) error
	FindByIDFunc func(ctx context.Context, id string) (*gatepass.Request, error)
	ListFunc     func(ctx context.Context, filter gatepass.RequestFilter) ([]*gatepass.Request, int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *gatepass.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *gatepass.Request, expectedStatus vo.RequestStatus) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r, expectedStatus)
	}
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id string) (*gatepass.Request, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter gatepass.RequestFilter) ([]*gatepass.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	m.published = append(m.published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

type mockLogger struct {
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func requesterActor(id string) identity.Actor {
	return identity.Actor{ID: id, Name: "Jane Visitor", Role: identity.RoleRequester}
}

func securityActor() identity.Actor {
	return identity.Actor{ID: "usr_sec1", Name: "Sam Guard", Role: identity.RoleSecurity}
}

func hrAdminActor() identity.Actor {
	return identity.Actor{
		ID:         "usr_adm1",
		Name:       "Alex Admin",
		Role:       identity.RoleDepartmentAdmin,
		Department: vo.DepartmentHR,
	}
}

func testPendingRequest(t *testing.T, id string) *gatepass.Request {
	t.Helper()

	req, err := gatepass.NewRequest(
		"usr_1",
		"Jane Visitor",
		"jane@example.com",
		"+1234567890",
		"Official meeting with HR",
		vo.DepartmentHR,
		time.Now().AddDate(0, 0, 1).Format(gatepass.VisitDateLayout),
		"10:30",
		vo.DurationTwoHours,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, req.SetID(id))
	return req
}

func testForwardedRequest(t *testing.T, id string) *gatepass.Request {
	t.Helper()

	req := testPendingRequest(t, id)
	require.NoError(t, req.Forward("documents checked"))
	return req
}
