// Package handlers contains subscribers for workflow domain events.
package handlers

import (
	"gatepass/internal/domain/gatepass"
	"gatepass/internal/domain/shared/events"
	"gatepass/internal/shared/logger"
)

// AuditLogHandler writes a structured audit line for every workflow event.
type AuditLogHandler struct {
	logger logger.Interface
}

func NewAuditLogHandler(log logger.Interface) *AuditLogHandler {
	return &AuditLogHandler{logger: log}
}

func (h *AuditLogHandler) Handle(event events.DomainEvent) error {
	h.logger.Infow("workflow event",
		"event_type", event.GetEventType(),
		"request_id", event.GetAggregateID(),
		"occurred_at", event.GetOccurredAt())
	return nil
}

func (h *AuditLogHandler) CanHandle(eventType string) bool {
	switch eventType {
	case gatepass.EventTypeRequestSubmitted,
		gatepass.EventTypeRequestForwarded,
		gatepass.EventTypeRequestApproved,
		gatepass.EventTypeRequestRejected:
		return true
	default:
		return false
	}
}

// Register subscribes the handler to every workflow event type.
func (h *AuditLogHandler) Register(dispatcher *events.InMemoryEventDispatcher) error {
	for _, eventType := range []string{
		gatepass.EventTypeRequestSubmitted,
		gatepass.EventTypeRequestForwarded,
		gatepass.EventTypeRequestApproved,
		gatepass.EventTypeRequestRejected,
	} {
		if err := dispatcher.Subscribe(eventType, h); err != nil {
			return err
		}
	}
	return nil
}
