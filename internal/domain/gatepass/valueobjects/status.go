package valueobjects

import "fmt"

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusForwarded RequestStatus = "forwarded"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
)

var validRequestStatuses = map[RequestStatus]bool{
	StatusPending:   true,
	StatusForwarded: true,
	StatusApproved:  true,
	StatusRejected:  true,
}

// requestStatusTransitions is the closed transition table. A request only moves
// forward: approved and rejected are terminal.
var requestStatusTransitions = map[RequestStatus][]RequestStatus{
	StatusPending: {
		StatusForwarded,
	},
	StatusForwarded: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {},
	StatusRejected: {},
}

func (rs RequestStatus) String() string {
	return string(rs)
}

func (rs RequestStatus) IsValid() bool {
	return validRequestStatuses[rs]
}

func (rs RequestStatus) CanTransitionTo(newStatus RequestStatus) bool {
	allowedTransitions, ok := requestStatusTransitions[rs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (rs RequestStatus) IsPending() bool {
	return rs == StatusPending
}

func (rs RequestStatus) IsForwarded() bool {
	return rs == StatusForwarded
}

func (rs RequestStatus) IsApproved() bool {
	return rs == StatusApproved
}

func (rs RequestStatus) IsRejected() bool {
	return rs == StatusRejected
}

func (rs RequestStatus) IsTerminal() bool {
	return rs == StatusApproved || rs == StatusRejected
}

func NewRequestStatus(s string) (RequestStatus, error) {
	rs := RequestStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return rs, nil
}
