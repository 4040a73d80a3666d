package usecases

import (
	"context"
	"time"

	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

type SubmitRequestCommand struct {
	RequesterID    string
	RequesterName  string
	RequesterEmail string
	RequesterPhone string
	Purpose        string
	Department     string
	VisitDate      string
	VisitTime      string
	Duration       string
	VehicleNumber  string
}

type SubmitRequestResult struct {
	RequestID string
	Status    string
	CreatedAt time.Time
}

type SubmitRequestUseCase struct {
	requestRepo gatepass.RequestRepository
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewSubmitRequestUseCase(
	requestRepo gatepass.RequestRepository,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		requestRepo: requestRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, cmd SubmitRequestCommand) (*SubmitRequestResult, error) {
	uc.logger.Infow("executing submit request use case", "requester_id", cmd.RequesterID, "department", cmd.Department)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid submit request command", "error", err)
		return nil, err
	}

	request, err := gatepass.NewRequest(
		cmd.RequesterID,
		cmd.RequesterName,
		cmd.RequesterEmail,
		cmd.RequesterPhone,
		cmd.Purpose,
		vo.Department(cmd.Department),
		cmd.VisitDate,
		cmd.VisitTime,
		vo.Duration(cmd.Duration),
		cmd.VehicleNumber,
	)
	if err != nil {
		uc.logger.Errorw("failed to create request entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, request); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, errors.NewInternalError("failed to save request")
	}

	uc.publishSubmitted(request)

	uc.logger.Infow("request submitted successfully", "request_id", request.ID(), "department", cmd.Department)

	return &SubmitRequestResult{
		RequestID: request.ID(),
		Status:    request.Status().String(),
		CreatedAt: request.CreatedAt(),
	}, nil
}

func (uc *SubmitRequestUseCase) validateCommand(cmd SubmitRequestCommand) error {
	if len(cmd.RequesterID) == 0 {
		return errors.NewValidationError("requester ID is required")
	}
	if len(cmd.RequesterName) == 0 {
		return errors.NewValidationError("requester name is required")
	}
	if len(cmd.RequesterEmail) == 0 {
		return errors.NewValidationError("requester email is required")
	}
	if len(cmd.RequesterPhone) == 0 {
		return errors.NewValidationError("requester phone is required")
	}
	if len(cmd.Purpose) == 0 {
		return errors.NewValidationError("purpose is required")
	}
	if !vo.Department(cmd.Department).IsValid() {
		return errors.NewValidationError("invalid department")
	}
	if !vo.Duration(cmd.Duration).IsValid() {
		return errors.NewValidationError("invalid visit duration")
	}
	if len(cmd.VisitDate) == 0 {
		return errors.NewValidationError("visit date is required")
	}
	if len(cmd.VisitTime) == 0 {
		return errors.NewValidationError("visit time is required")
	}
	return nil
}

func (uc *SubmitRequestUseCase) publishSubmitted(request *gatepass.Request) {
	if uc.dispatcher == nil {
		return
	}

	event := gatepass.NewRequestSubmittedEvent(
		request.ID(),
		request.RequesterID(),
		request.Department().String(),
		request.VisitDate(),
		time.Now(),
	)
	if err := uc.dispatcher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish request submitted event", "request_id", request.ID(), "error", err)
	}
}
