package gatepass

import (
	"context"

	vo "gatepass/internal/domain/gatepass/valueobjects"
)

// RequestRepository is the persistence port for gate pass requests. Save
// assigns the request's ID. Update is conditional on the stored status
// matching expectedStatus; a mismatch (another transition won the race, or
// the caller loaded stale state) returns a conflict error so that exactly one
// of two concurrent transitions succeeds.
type RequestRepository interface {
	Save(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request, expectedStatus vo.RequestStatus) error
	FindByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, filter RequestFilter) ([]*Request, int64, error)
}

// RequestFilter narrows List results. Zero fields are ignored. Results are
// ordered by creation time, newest first.
type RequestFilter struct {
	Status      *vo.RequestStatus
	Statuses    []vo.RequestStatus
	Department  *vo.Department
	RequesterID *string
	Page        int
	PageSize    int
}
