package credential

import (
	"context"
	"fmt"
	"time"

	"gatepass/internal/domain/gatepass"
	"gatepass/internal/domain/identity"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

// RenderState is the view-level lifecycle of a render attempt. It describes
// what the caller should display and is never persisted.
type RenderState string

const (
	RenderStatePending RenderState = "pending"
	RenderStateReady   RenderState = "ready"
	RenderStateFailed  RenderState = "failed"
)

// Generator produces a scannable image for a credential payload. The same
// (text, size) pair always yields identical bytes.
type Generator interface {
	Render(text string, size int) ([]byte, error)
}

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = time.Second
	DefaultImageSize   = 200
)

type RenderCredentialQuery struct {
	RequestID string
	Actor     identity.Actor
	Size      int
}

type RenderCredentialResult struct {
	RequestID string
	State     RenderState
	Image     []byte
	Payload   string
}

// RenderCredentialService renders the credential stored on an approved
// request, on demand. Generator failures are retried with a fixed delay;
// nothing is written back to the request on any outcome.
type RenderCredentialService struct {
	requestRepo gatepass.RequestRepository
	generator   Generator
	maxAttempts int
	retryDelay  time.Duration
	defaultSize int
	logger      logger.Interface
}

func NewRenderCredentialService(
	requestRepo gatepass.RequestRepository,
	generator Generator,
	maxAttempts int,
	retryDelay time.Duration,
	defaultSize int,
	log logger.Interface,
) *RenderCredentialService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	if defaultSize <= 0 {
		defaultSize = DefaultImageSize
	}
	return &RenderCredentialService{
		requestRepo: requestRepo,
		generator:   generator,
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		defaultSize: defaultSize,
		logger:      log,
	}
}

func (s *RenderCredentialService) Execute(ctx context.Context, query RenderCredentialQuery) (*RenderCredentialResult, error) {
	s.logger.Infow("executing render credential service", "request_id", query.RequestID, "actor_id", query.Actor.ID)

	if len(query.RequestID) == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := query.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	request, err := s.requestRepo.FindByID(ctx, query.RequestID)
	if err != nil {
		s.logger.Errorw("failed to load request", "request_id", query.RequestID, "error", err)
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %s not found", query.RequestID))
	}

	if !s.canRender(query.Actor, request) {
		s.logger.Warnw("actor cannot render credential", "request_id", query.RequestID, "actor_id", query.Actor.ID)
		return nil, errors.NewAuthorizationError("credential is not visible to this actor")
	}

	if !request.Status().IsApproved() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("cannot render credential for a %s request", request.Status()),
		)
	}
	if len(request.Credential()) == 0 {
		return nil, errors.NewValidationError("approved request has no credential payload")
	}

	size := query.Size
	if size <= 0 {
		size = s.defaultSize
	}

	image, err := s.renderWithRetry(ctx, request.Credential(), size, query.RequestID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("credential rendered", "request_id", query.RequestID, "bytes", len(image))

	return &RenderCredentialResult{
		RequestID: request.ID(),
		State:     RenderStateReady,
		Image:     image,
		Payload:   request.Credential(),
	}, nil
}

func (s *RenderCredentialService) renderWithRetry(ctx context.Context, text string, size int, requestID string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		image, err := s.generator.Render(text, size)
		if err == nil {
			return image, nil
		}
		lastErr = err
		s.logger.Warnw("render attempt failed",
			"request_id", requestID,
			"attempt", attempt,
			"max_attempts", s.maxAttempts,
			"error", err)

		if attempt == s.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryDelay):
		}
	}

	s.logger.Errorw("render attempts exhausted", "request_id", requestID, "error", lastErr)
	return nil, errors.NewRenderError(
		fmt.Sprintf("failed to render credential after %d attempts", s.maxAttempts),
		lastErr,
	)
}

// canRender mirrors request visibility: the requester renders their own pass,
// security renders any, department admins render their department's.
func (s *RenderCredentialService) canRender(actor identity.Actor, request *gatepass.Request) bool {
	switch actor.Role {
	case identity.RoleSecurity:
		return true
	case identity.RoleRequester:
		return request.RequesterID() == actor.ID
	case identity.RoleDepartmentAdmin:
		return request.Department() == actor.Department
	default:
		return false
	}
}
