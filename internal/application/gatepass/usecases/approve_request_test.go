package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatepass/internal/domain/credential"
	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/domain/identity"
	apperrors "gatepass/internal/shared/errors"
)

func testCodec() *credential.Codec {
	return credential.NewCodec(0, 0, "Your Company Name")
}

func TestApproveRequestUseCase_Execute_Success(t *testing.T) {
	request := testForwardedRequest(t, "gp_apr00001")
	var updatedWith vo.RequestStatus
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*gatepass.Request, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *gatepass.Request, expectedStatus vo.RequestStatus) error {
			updatedWith = expectedStatus
			return nil
		},
	}
	dispatcher := &mockEventDispatcher{}
	codec := testCodec()

	uc := NewApproveRequestUseCase(mockRepo, codec, dispatcher, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{
		RequestID: "gp_apr00001",
		Actor:     hrAdminActor(),
		Comment:   "cleared for visit",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusForwarded.String(), result.OldStatus)
	assert.Equal(t, vo.StatusApproved.String(), result.NewStatus)
	assert.Equal(t, vo.StatusForwarded, updatedWith)
	require.NotEmpty(t, result.Credential)

	payload, err := codec.Decode(result.Credential)
	require.NoError(t, err)
	assert.Equal(t, "gp_apr00001", payload.ID)
	assert.Equal(t, "Alex Admin", payload.ApprovedBy)

	assert.Equal(t, vo.StatusApproved, request.Status())
	assert.Equal(t, "cleared for visit", request.DepartmentComment())

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, gatepass.EventTypeRequestApproved, dispatcher.published[0].GetEventType())
}

func TestApproveRequestUseCase_Execute_DepartmentMismatch(t *testing.T) {
	request := testForwardedRequest(t, "gp_apr00002")
	updateCalled := false
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*gatepass.Request, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *gatepass.Request, expectedStatus vo.RequestStatus) error {
			updateCalled = true
			return nil
		},
	}

	itAdmin := identity.Actor{
		ID:         "usr_adm2",
		Name:       "Iris Tech",
		Role:       identity.RoleDepartmentAdmin,
		Department: vo.DepartmentIT,
	}

	uc := NewApproveRequestUseCase(mockRepo, testCodec(), &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{
		RequestID: "gp_apr00002",
		Actor:     itAdmin,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsAuthorizationError(err), "expected authorization error, got %v", err)
	assert.False(t, updateCalled)
	assert.Equal(t, vo.StatusForwarded, request.Status())
	assert.Empty(t, request.Credential())
}

func TestApproveRequestUseCase_Execute_RequiresDepartmentAdmin(t *testing.T) {
	for _, tc := range []struct {
		name  string
		actor identity.Actor
	}{
		{"security cannot approve", securityActor()},
		{"requester cannot approve", requesterActor("usr_1")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewApproveRequestUseCase(&mockRequestRepository{}, testCodec(), &mockEventDispatcher{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), ApproveRequestCommand{
				RequestID: "gp_apr00003",
				Actor:     tc.actor,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsAuthorizationError(err))
		})
	}
}

func TestApproveRequestUseCase_Execute_NotForwarded(t *testing.T) {
	request := testPendingRequest(t, "gp_apr00004")
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*gatepass.Request, error) {
			return request, nil
		},
	}

	uc := NewApproveRequestUseCase(mockRepo, testCodec(), &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{
		RequestID: "gp_apr00004",
		Actor:     hrAdminActor(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidTransitionError(err))
	assert.Equal(t, vo.StatusPending, request.Status())
	assert.Empty(t, request.Credential())
}

func TestApproveRequestUseCase_Execute_LosesConcurrentRace(t *testing.T) {
	request := testForwardedRequest(t, "gp_apr00005")
	dispatcher := &mockEventDispatcher{}
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*gatepass.Request, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *gatepass.Request, expectedStatus vo.RequestStatus) error {
			return apperrors.NewConflictError("request status changed")
		},
	}

	uc := NewApproveRequestUseCase(mockRepo, testCodec(), dispatcher, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{
		RequestID: "gp_apr00005",
		Actor:     hrAdminActor(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidTransitionError(err))
	assert.Empty(t, dispatcher.published)
}

func TestApproveRequestUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockRequestRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*gatepass.Request, error) {
			return nil, apperrors.NewNotFoundError("request not found")
		},
	}

	uc := NewApproveRequestUseCase(mockRepo, testCodec(), &mockEventDispatcher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveRequestCommand{
		RequestID: "gp_missing",
		Actor:     hrAdminActor(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
