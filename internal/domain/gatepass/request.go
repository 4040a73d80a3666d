// Package gatepass contains the gate pass request aggregate and its workflow
// rules. A request moves pending -> forwarded -> approved/rejected; approved
// and rejected are terminal.
package gatepass

import (
	"fmt"
	"strings"
	"time"

	vo "gatepass/internal/domain/gatepass/valueobjects"
)

const (
	// VisitDateLayout is the wire and storage layout for visit dates.
	VisitDateLayout = "2006-01-02"
	// VisitTimeLayout is the wire and storage layout for visit times.
	VisitTimeLayout = "15:04"

	maxPurposeLength = 2000
)

// Request is the workflow's subject. The requester fields are a snapshot
// captured at creation time, not a live reference, so a later profile edit
// never retroactively alters an issued credential.
type Request struct {
	id                string
	requesterID       string
	requesterName     string
	requesterEmail    string
	requesterPhone    string
	purpose           string
	department        vo.Department
	visitDate         string
	visitTime         string
	duration          vo.Duration
	vehicleNumber     string
	status            vo.RequestStatus
	securityComment   string
	departmentComment string
	approvedBy        string
	credential        string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequest(
	requesterID string,
	requesterName string,
	requesterEmail string,
	requesterPhone string,
	purpose string,
	department vo.Department,
	visitDate string,
	visitTime string,
	duration vo.Duration,
	vehicleNumber string,
) (*Request, error) {
	if len(requesterID) == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}
	if len(requesterName) == 0 {
		return nil, fmt.Errorf("requester name is required")
	}
	if len(requesterEmail) == 0 || !strings.Contains(requesterEmail, "@") {
		return nil, fmt.Errorf("valid requester email is required")
	}
	if len(requesterPhone) == 0 {
		return nil, fmt.Errorf("requester phone is required")
	}
	if len(purpose) == 0 {
		return nil, fmt.Errorf("purpose is required")
	}
	if len(purpose) > maxPurposeLength {
		return nil, fmt.Errorf("purpose exceeds maximum length of %d characters", maxPurposeLength)
	}
	if !department.IsValid() {
		return nil, fmt.Errorf("invalid department")
	}
	if !duration.IsValid() {
		return nil, fmt.Errorf("invalid visit duration")
	}

	date, err := time.Parse(VisitDateLayout, visitDate)
	if err != nil {
		return nil, fmt.Errorf("invalid visit date: %s", visitDate)
	}
	if _, err := time.Parse(VisitTimeLayout, visitTime); err != nil {
		return nil, fmt.Errorf("invalid visit time: %s", visitTime)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, fmt.Errorf("visit date cannot be in the past")
	}

	return &Request{
		requesterID:    requesterID,
		requesterName:  requesterName,
		requesterEmail: requesterEmail,
		requesterPhone: requesterPhone,
		purpose:        purpose,
		department:     department,
		visitDate:      visitDate,
		visitTime:      visitTime,
		duration:       duration,
		vehicleNumber:  vehicleNumber,
		status:         vo.StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRequest(
	id string,
	requesterID string,
	requesterName string,
	requesterEmail string,
	requesterPhone string,
	purpose string,
	department vo.Department,
	visitDate string,
	visitTime string,
	duration vo.Duration,
	vehicleNumber string,
	status vo.RequestStatus,
	securityComment string,
	departmentComment string,
	approvedBy string,
	credential string,
	createdAt, updatedAt time.Time,
) (*Request, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("request ID is required")
	}
	if len(requesterName) == 0 {
		return nil, fmt.Errorf("requester name is required")
	}
	if !department.IsValid() {
		return nil, fmt.Errorf("invalid department")
	}
	if !duration.IsValid() {
		return nil, fmt.Errorf("invalid visit duration")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Request{
		id:                id,
		requesterID:       requesterID,
		requesterName:     requesterName,
		requesterEmail:    requesterEmail,
		requesterPhone:    requesterPhone,
		purpose:           purpose,
		department:        department,
		visitDate:         visitDate,
		visitTime:         visitTime,
		duration:          duration,
		vehicleNumber:     vehicleNumber,
		status:            status,
		securityComment:   securityComment,
		departmentComment: departmentComment,
		approvedBy:        approvedBy,
		credential:        credential,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (r *Request) ID() string {
	return r.id
}

func (r *Request) RequesterID() string {
	return r.requesterID
}

func (r *Request) RequesterName() string {
	return r.requesterName
}

func (r *Request) RequesterEmail() string {
	return r.requesterEmail
}

func (r *Request) RequesterPhone() string {
	return r.requesterPhone
}

func (r *Request) Purpose() string {
	return r.purpose
}

func (r *Request) Department() vo.Department {
	return r.department
}

func (r *Request) VisitDate() string {
	return r.visitDate
}

func (r *Request) VisitTime() string {
	return r.visitTime
}

func (r *Request) Duration() vo.Duration {
	return r.duration
}

func (r *Request) VehicleNumber() string {
	return r.vehicleNumber
}

func (r *Request) Status() vo.RequestStatus {
	return r.status
}

func (r *Request) SecurityComment() string {
	return r.securityComment
}

func (r *Request) DepartmentComment() string {
	return r.departmentComment
}

func (r *Request) ApprovedBy() string {
	return r.approvedBy
}

func (r *Request) Credential() string {
	return r.credential
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Request) SetID(id string) error {
	if len(r.id) > 0 {
		return fmt.Errorf("request ID is already set")
	}
	if len(id) == 0 {
		return fmt.Errorf("request ID cannot be empty")
	}
	r.id = id
	return nil
}

// Forward moves the request from pending to forwarded, recording the security
// reviewer's comment. The comment may be empty.
func (r *Request) Forward(securityComment string) error {
	if !r.status.CanTransitionTo(vo.StatusForwarded) {
		return fmt.Errorf("cannot forward request with status %s", r.status)
	}

	r.status = vo.StatusForwarded
	r.securityComment = securityComment
	r.updatedAt = time.Now()

	return nil
}

// Approve moves the request from forwarded to approved, recording the
// department decision and the issued credential payload.
func (r *Request) Approve(departmentComment, approvedBy, credential string) error {
	if !r.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve request with status %s", r.status)
	}
	if len(approvedBy) == 0 {
		return fmt.Errorf("approver identity is required")
	}
	if len(credential) == 0 {
		return fmt.Errorf("credential payload is required on approval")
	}

	r.status = vo.StatusApproved
	r.departmentComment = departmentComment
	r.approvedBy = approvedBy
	r.credential = credential
	r.updatedAt = time.Now()

	return nil
}

// Reject moves the request from forwarded to rejected, recording the
// department decision. The credential stays empty.
func (r *Request) Reject(departmentComment, decidedBy string) error {
	if !r.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject request with status %s", r.status)
	}
	if len(decidedBy) == 0 {
		return fmt.Errorf("decider identity is required")
	}

	r.status = vo.StatusRejected
	r.departmentComment = departmentComment
	r.approvedBy = decidedBy
	r.updatedAt = time.Now()

	return nil
}

// Validate checks the aggregate's structural invariants.
func (r *Request) Validate() error {
	if len(r.requesterName) == 0 {
		return fmt.Errorf("requester name is required")
	}
	if len(r.purpose) == 0 {
		return fmt.Errorf("purpose is required")
	}
	if !r.department.IsValid() {
		return fmt.Errorf("invalid department")
	}
	if !r.duration.IsValid() {
		return fmt.Errorf("invalid visit duration")
	}
	if !r.status.IsValid() {
		return fmt.Errorf("invalid status")
	}

	if r.status.IsApproved() && len(r.credential) == 0 {
		return fmt.Errorf("approved request must carry a credential")
	}
	if !r.status.IsApproved() && len(r.credential) > 0 {
		return fmt.Errorf("credential is only set on approved requests")
	}
	if !r.status.IsTerminal() && (len(r.departmentComment) > 0 || len(r.approvedBy) > 0) {
		return fmt.Errorf("department decision fields are only set on decided requests")
	}
	if r.status.IsPending() && len(r.securityComment) > 0 {
		return fmt.Errorf("security comment is only set after forwarding")
	}

	return nil
}
