package usecases

import (
	"context"
	"fmt"
	"time"

	"gatepass/internal/domain/credential"
	"gatepass/internal/domain/gatepass"
	"gatepass/internal/domain/identity"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

type ApproveRequestCommand struct {
	RequestID string
	Actor     identity.Actor
	Comment   string
}

type ApproveRequestResult struct {
	RequestID  string
	OldStatus  string
	NewStatus  string
	Credential string
	UpdatedAt  time.Time
}

// ApproveRequestUseCase performs the department decision transition that
// issues the credential. Only a department admin of the request's target
// department may approve; the engine enforces this regardless of caller.
type ApproveRequestUseCase struct {
	requestRepo gatepass.RequestRepository
	codec       *credential.Codec
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewApproveRequestUseCase(
	requestRepo gatepass.RequestRepository,
	codec *credential.Codec,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{
		requestRepo: requestRepo,
		codec:       codec,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error) {
	uc.logger.Infow("executing approve request use case", "request_id", cmd.RequestID, "actor_id", cmd.Actor.ID)

	if len(cmd.RequestID) == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := cmd.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Actor.Role != identity.RoleDepartmentAdmin {
		uc.logger.Warnw("actor is not a department admin", "request_id", cmd.RequestID, "actor_role", cmd.Actor.Role)
		return nil, errors.NewAuthorizationError("only department admins may approve requests")
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
		uc.logger.Warnw("department mismatch on approve",
			"request_id", cmd.RequestID,
			"actor_department", cmd.Actor.Department,
			"request_department", request.Department())
		return nil, errors.NewAuthorizationError(
			fmt.Sprintf("actor department %s cannot decide a %s request", cmd.Actor.Department, request.Department()),
		)
	}

	oldStatus := request.Status()
	if !oldStatus.IsForwarded() {
		return nil, errors.NewInvalidTransitionError(
			fmt.Sprintf("cannot approve request with status %s", oldStatus),
		)
	}

	encoded, err := uc.codec.Encode(request, cmd.Actor.Name, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to encode credential payload", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	if err := request.Approve(cmd.Comment, cmd.Actor.Name, encoded); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request, oldStatus); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("lost approve race", "request_id", cmd.RequestID)
			return nil, errors.NewInvalidTransitionError("request status changed concurrently")
		}
		uc.logger.Errorw("failed to update request", "request_id", cmd.RequestID, "error", err)
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.publishApproved(request, cmd.Actor)

	uc.logger.Infow("request approved successfully", "request_id", cmd.RequestID, "approved_by", cmd.Actor.Name)

	return &ApproveRequestResult{
		RequestID:  request.ID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  request.Status().String(),
		Credential: request.Credential(),
		UpdatedAt:  request.UpdatedAt(),
	}, nil
}

func (uc *ApproveRequestUseCase) publishApproved(request *gatepass.Request, actor identity.Actor) {
	if uc.dispatcher == nil {
		return
	}

	event := gatepass.NewRequestApprovedEvent(request.ID(), request.Department().String(), actor.Name, time.Now())
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request approved event", "request_id", request.ID(), "error", err)
	}
}
