package mappers

import (
	"fmt"
	"time"

	"gatepass/internal/domain/gatepass"
	vo "gatepass/internal/domain/gatepass/valueobjects"
	"gatepass/internal/infrastructure/persistence/models"
)

// GatePassMapper handles the conversion between Request domain entities and persistence models.
type GatePassMapper interface {
	// ToModel converts a request domain entity to a persistence model.
	ToModel(r *gatepass.Request) *models.GatePassRequestModel

	// ToDomain converts a request persistence model to a domain entity.
	ToDomain(model *models.GatePassRequestModel) (*gatepass.Request, error)
}

// GatePassMapperImpl is the concrete implementation of GatePassMapper.
type GatePassMapperImpl struct{}

// NewGatePassMapper creates a new GatePassMapper.
func NewGatePassMapper() GatePassMapper {
	return &GatePassMapperImpl{}
}

func (m *GatePassMapperImpl) ToModel(r *gatepass.Request) *models.GatePassRequestModel {
	return &models.GatePassRequestModel{
		ID:                r.ID(),
		RequesterID:       r.RequesterID(),
		RequesterName:     r.RequesterName(),
		RequesterEmail:    r.RequesterEmail(),
		RequesterPhone:    r.RequesterPhone(),
		Purpose:           r.Purpose(),
		Department:        r.Department().String(),
		VisitDate:         r.VisitDate(),
		VisitTime:         r.VisitTime(),
		Duration:          r.Duration().String(),
		VehicleNumber:     r.VehicleNumber(),
		Status:            r.Status().String(),
		SecurityComment:   r.SecurityComment(),
		DepartmentComment: r.DepartmentComment(),
		ApprovedBy:        r.ApprovedBy(),
		Credential:        r.Credential(),
		CreatedAt:         r.CreatedAt().UnixMilli(),
		UpdatedAt:         r.UpdatedAt().UnixMilli(),
	}
}

func (m *GatePassMapperImpl) ToDomain(model *models.GatePassRequestModel) (*gatepass.Request, error) {
	status, err := vo.NewRequestStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%s): %w", model.ID, err)
	}

	request, err := gatepass.ReconstructRequest(
		model.ID,
		model.RequesterID,
		model.RequesterName,
		model.RequesterEmail,
		model.RequesterPhone,
		model.Purpose,
		vo.Department(model.Department),
		model.VisitDate,
		model.VisitTime,
		vo.Duration(model.Duration),
		model.VehicleNumber,
		status,
		model.SecurityComment,
		model.DepartmentComment,
		model.ApprovedBy,
		model.Credential,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct request (id=%s): %w", model.ID, err)
	}

	return request, nil
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
