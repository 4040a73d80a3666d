package usecases

import (
	"context"
	"fmt"
	"time"

	"gatepass/internal/domain/gatepass"
	"gatepass/internal/domain/identity"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

type ForwardRequestCommand struct {
	RequestID string
	Actor     identity.Actor
	Comment   string
}

type ForwardRequestResult struct {
	RequestID string
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

// ForwardRequestUseCase performs the security triage transition. Any security
// reviewer may forward regardless of the request's target department; only
// the later decision transitions are department scoped.
type ForwardRequestUseCase struct {
	requestRepo gatepass.RequestRepository
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewForwardRequestUseCase(
	requestRepo gatepass.RequestRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ForwardRequestUseCase {
	return &ForwardRequestUseCase{
		requestRepo: requestRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *ForwardRequestUseCase) Execute(ctx context.Context, cmd ForwardRequestCommand) (*ForwardRequestResult, error) {
	uc.logger.Infow("executing forward request use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if len(cmd.RequestID) == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := cmd.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Actor.Role != identity.RoleSecurity {
		uc.logger.Warnw("actor is not a security reviewer", "request_id", cmd.RequestID, "actor_role", cmd.Actor.Role)
		return nil, errors.NewAuthorizationError("only security reviewers may forward requests")
	}

	request, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %s not found", cmd.RequestID))
	}

	oldStatus := request.Status()

	if err := request.Forward(cmd.Comment); err != nil {
		uc.logger.Warnw("forward transition rejected", "request_id", cmd.RequestID, "status", oldStatus, "error", err)
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request, oldStatus); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("lost forward race", "request_id", cmd.RequestID)
			return nil, errors.NewInvalidTransitionError("request status changed concurrently")
		}
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.publishForwarded(request, cmd.Actor)

	uc.logger.Infow("request forwarded successfully", "request_id", cmd.RequestID, "department", request.Department())

	return &ForwardRequestResult{
		RequestID: request.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: request.Status().String(),
		UpdatedAt: request.UpdatedAt(),
	}, nil
}

func (uc *ForwardRequestUseCase) publishForwarded(request *gatepass.Request, actor identity.Actor) {
	if uc.dispatcher == nil {
		return
	}

	event := gatepass.NewRequestForwardedEvent(request.ID(), actor.Name, request.SecurityComment(), time.Now())
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request forwarded event", "request_id", request.ID(), "error", err)
	}
}
