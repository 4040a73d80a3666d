package dto

import (
	"time"

	"gatepass/internal/domain/gatepass"
)

type RequestDTO struct {
	ID                string    `json:"id"`
	RequesterID       string    `json:"requester_id"`
	RequesterName     string    `json:"requester_name"`
	RequesterEmail    string    `json:"requester_email"`
	RequesterPhone    string    `json:"requester_phone"`
	Purpose           string    `json:"purpose"`
	Department        string    `json:"department"`
	VisitDate         string    `json:"visit_date"`
	VisitTime         string    `json:"visit_time"`
	Duration          string    `json:"duration"`
	VehicleNumber     string    `json:"vehicle_number,omitempty"`
	Status            string    `json:"status"`
	SecurityComment   string    `json:"security_comment,omitempty"`
	DepartmentComment string    `json:"department_comment,omitempty"`
	ApprovedBy        string    `json:"approved_by,omitempty"`
	Credential        string    `json:"credential,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type RequestListItemDTO struct {
	ID            string `json:"id"`
	RequesterName string `json:"requester_name"`
	Purpose       string `json:"purpose"`
	Department    string `json:"department"`
	VisitDate     string `json:"visit_date"`
	VisitTime     string `json:"visit_time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

func ToRequestDTO(r *gatepass.Request) *RequestDTO {
	if r == nil {
		return nil
	}

	return &RequestDTO{
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
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func ToRequestListItemDTO(r *gatepass.Request) RequestListItemDTO {
	return RequestListItemDTO{
		ID:            r.ID(),
		RequesterName: r.RequesterName(),
		Purpose:       r.Purpose(),
		Department:    r.Department().String(),
		VisitDate:     r.VisitDate(),
		VisitTime:     r.VisitTime(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt().Format(time.RFC3339),
	}
}
