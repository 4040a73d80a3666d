package gatepass

import (
	"time"

	"gatepass/internal/domain/shared/events"
)

const (
	EventTypeRequestSubmitted = "gatepass.request.submitted"
	EventTypeRequestForwarded = "gatepass.request.forwarded"
	EventTypeRequestApproved  = "gatepass.request.approved"
	EventTypeRequestRejected  = "gatepass.request.rejected"
)

type RequestSubmittedEvent struct {
	events.BaseEvent
	RequesterID string `json:"requester_id"`
	Department  string `json:"department"`
	VisitDate   string `json:"visit_date"`
}

func NewRequestSubmittedEvent(requestID, requesterID, department, visitDate string, occurredAt time.Time) RequestSubmittedEvent {
	return RequestSubmittedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: requestID,
			EventType:   EventTypeRequestSubmitted,
			OccurredAt:  occurredAt,
			Version:     1,
		},
		RequesterID: requesterID,
		Department:  department,
		VisitDate:   visitDate,
	}
}

type RequestForwardedEvent struct {
	events.BaseEvent
	ForwardedBy string `json:"forwarded_by"`
	Comment     string `json:"comment"`
}

func NewRequestForwardedEvent(requestID, forwardedBy, comment string, occurredAt time.Time) RequestForwardedEvent {
	return RequestForwardedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: requestID,
			EventType:   EventTypeRequestForwarded,
			OccurredAt:  occurredAt,
			Version:     1,
		},
		ForwardedBy: forwardedBy,
		Comment:     comment,
	}
}

type RequestApprovedEvent struct {
	events.BaseEvent
	Department string `json:"department"`
	ApprovedBy string `json:"approved_by"`
}

func NewRequestApprovedEvent(requestID, department, approvedBy string, occurredAt time.Time) RequestApprovedEvent {
	return RequestApprovedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: requestID,
			EventType:   EventTypeRequestApproved,
			OccurredAt:  occurredAt,
			Version:     1,
		},
		Department: department,
		ApprovedBy: approvedBy,
	}
}

type RequestRejectedEvent struct {
	events.BaseEvent
	Department string `json:"department"`
	RejectedBy string `json:"rejected_by"`
}

func NewRequestRejectedEvent(requestID, department, rejectedBy string, occurredAt time.Time) RequestRejectedEvent {
	return RequestRejectedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: requestID,
			EventType:   EventTypeRequestRejected,
			OccurredAt:  occurredAt,
			Version:     1,
		},
		Department: department,
		RejectedBy: rejectedBy,
	}
}
