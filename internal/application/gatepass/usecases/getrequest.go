package usecases

import (
	"context"
	"fmt"

	"gatepass/internal/application/gatepass/dto"
	"gatepass/internal/domain/gatepass"
	"gatepass/internal/domain/identity"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

type GetRequestQuery struct {
	RequestID string
	Actor     identity.Actor
}

type GetRequestUseCase struct {
	requestRepo gatepass.RequestRepository
	logger      logger.Interface
}

func NewGetRequestUseCase(
	requestRepo gatepass.RequestRepository,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing get request use case", "request_id", query.RequestID, "actor_id", query.Actor.ID)

	if len(query.RequestID) == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if err := query.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	request, err := uc.requestRepo.FindByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load request", "request_id", query.RequestID, "error", err)
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("request %s not found", query.RequestID))
	}

	if !canView(query.Actor, request) {
		uc.logger.Warnw("actor cannot view request", "request_id", query.RequestID, "actor_id", query.Actor.ID)
		return nil, errors.NewAuthorizationError("request is not visible to this actor")
	}

	return dto.ToRequestDTO(request), nil
}

// canView mirrors the dashboard visibility rules: requesters see their own
// requests, security sees everything, department admins see requests
// targeting their department.
func canView(actor identity.Actor, request *gatepass.Request) bool {
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
