package usecases

import (
	"context"

	"gatepass/internal/application/gatepass/dto"
	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/domain/identity"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/logger"
)

type ListRequestsQuery struct {
	Actor    identity.Actor
	Status   string
	Page     int
	PageSize int
}

type ListRequestsResult struct {
	Requests []dto.RequestListItemDTO
	Total    int64
}

type ListRequestsUseCase struct {
	requestRepo gatepass.RequestRepository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo gatepass.RequestRepository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	uc.logger.Infow("executing list requests use case", "actor_id", query.Actor.ID, "actor_role", query.Actor.Role)

	if err := query.Actor.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	requests, total, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	items := make([]dto.RequestListItemDTO, len(requests))
	for i, r := range requests {
		items[i] = dto.ToRequestListItemDTO(r)
	}

	return &ListRequestsResult{
		Requests: items,
		Total:    total,
	}, nil
}

// buildFilter scopes the listing to what the actor's dashboard shows:
// requesters get their own requests, security gets all of them, department
// admins get their department's forwarded and decided requests.
func (uc *ListRequestsUseCase) buildFilter(query ListRequestsQuery) (gatepass.RequestFilter, error) {
	filter := gatepass.RequestFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if len(query.Status) > 0 {
		status, err := vo.NewRequestStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	switch query.Actor.Role {
	case identity.RoleRequester:
		requesterID := query.Actor.ID
		filter.RequesterID = &requesterID
	case identity.RoleSecurity:
		// Security triages everything; no scoping.
	case identity.RoleDepartmentAdmin:
		department := query.Actor.Department
		filter.Department = &department
		if filter.Status == nil {
			filter.Statuses = []vo.RequestStatus{
				vo.StatusForwarded,
				vo.StatusApproved,
				vo.StatusRejected,
			}
		}
	default:
		return filter, errors.NewAuthorizationError("unknown actor role")
	}

	return filter, nil
}
