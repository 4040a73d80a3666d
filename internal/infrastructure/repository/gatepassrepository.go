package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/infrastructure/persistence/mappers"
	"gatepass/internal/infrastructure/persistence/models"
	db "gatepass/internal/shared/db"
	"gatepass/internal/shared/errors"
	"gatepass/internal/shared/id"
)

type GatePassRepository struct {
	db     *gorm.DB
	mapper mappers.GatePassMapper
}

func NewGatePassRepository(database *gorm.DB) *GatePassRepository {
	return &GatePassRepository{
		db:     database,
		mapper: mappers.NewGatePassMapper(),
	}
}

func (r *GatePassRepository) Save(ctx context.Context, request *gatepass.Request) error {
	if len(request.ID()) == 0 {
		newID, err := id.NewGatePassID()
		if err != nil {
			return fmt.Errorf("failed to generate request ID: %w", err)
		}
		if err := request.SetID(newID); err != nil {
			return err
		}
	}

	model := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("request %s already exists", model.ID))
		}
		return fmt.Errorf("failed to save request: %w", err)
	}

	return nil
}

// Update persists the request only while the stored status still matches
// expectedStatus. Zero matched rows means another transition committed first
// (or the request vanished); the caller gets a conflict and must re-fetch.
func (r *GatePassRepository) Update(ctx context.Context, request *gatepass.Request, expectedStatus vo.RequestStatus) error {
	model := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.GatePassRequestModel{}).
		Where("id = ? AND status = ?", model.ID, expectedStatus.String()).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"security_comment":   model.SecurityComment,
			"department_comment": model.DepartmentComment,
			"approved_by":        model.ApprovedBy,
			"credential":         model.Credential,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError(
			fmt.Sprintf("request %s is no longer in status %s", model.ID, expectedStatus),
		)
	}

	return nil
}

func (r *GatePassRepository) FindByID(ctx context.Context, requestID string) (*gatepass.Request, error) {
	var model models.GatePassRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", requestID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("request %s not found", requestID))
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *GatePassRepository) List(
	ctx context.Context,
	filter gatepass.RequestFilter,
) ([]*gatepass.Request, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.GatePassRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Department != nil {
		query = query.Where("department = ?", filter.Department.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var requestModels []models.GatePassRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*gatepass.Request, len(requestModels))
	for i, model := range requestModels {
		request, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		requests[i] = request
	}

	return requests, total, nil
}
