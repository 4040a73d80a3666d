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

type RejectRequestCommand struct {
	RequestID string
	Actor     identity.Actor
	Comment   string
}

type RejectRequestResult struct {
	RequestID string
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

// RejectRequestUseCase performs the negative department decision. It shares
// the approve transition's gating but never issues a credential.
type RejectRequestUseCase struct {
	requestRepo gatepass.RequestRepository
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewRejectRequestUseCase(
	requestRepo gatepass.RequestRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error) {
	uc.logger.Infow("executing reject request use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if len(cmd.RequestID) == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := cmd.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Actor.Role != identity.RoleDepartmentAdmin {
		uc.logger.Warnw("actor is not a department admin", "request_id", cmd.RequestID, "actor_role", cmd.Actor.Role)
		return nil, errors.NewAuthorizationError("only department admins may reject requests")
	}

	request, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", cmd.RequestID, "error", err)
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %s not found", cmd.RequestID))
	}

	if cmd.Actor.Department != request.Department() {
		uc.logger.Warnw("department mismatch on reject",
			"request_id", cmd.RequestID,
			"actor_department", cmd.Actor.Department,
			"request_department", request.Department())
		return nil, errors.NewAuthorizationError(
			fmt.Sprintf("actor department %s cannot decide a %s request", cmd.Actor.Department, request.Department()),
		)
	}

	oldStatus := request.Status()

	if err := request.Reject(cmd.Comment, cmd.Actor.Name); err != nil {
		uc.logger.Warnw("reject transition refused", "request_id", cmd.RequestID, "status", oldStatus, "error", err)
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request, oldStatus); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("lost reject race", "request_id", cmd.RequestID)
			return nil, errors.NewInvalidTransitionError("request status changed concurrently")
		}
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.publishRejected(request, cmd.Actor)

	uc.logger.Infow("request rejected", "request_id", cmd.RequestID, "rejected_by", cmd.Actor.Name)

	return &RejectRequestResult{
		RequestID: request.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: request.Status().String(),
		UpdatedAt: request.UpdatedAt(),
	}, nil
}

func (uc *RejectRequestUseCase) publishRejected(request *gatepass.Request, actor identity.Actor) {
	if uc.dispatcher == nil {
		return
	}

	event := gatepass.NewRequestRejectedEvent(request.ID(), request.Department().String(), actor.Name, time.Now())
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request rejected event", "request_id", request.ID(), "error", err)
	}
}
