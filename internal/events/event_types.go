package events

import (
	"time"

	"github.com/spec-kit/reagent-inventory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReagentCreated EventType = "reagent_created"
	EventReagentUpdated EventType = "reagent_updated"
	EventReagentDeleted EventType = "reagent_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ReagentID string      `json:"reagent_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ReagentCreatedPayload payload.
type ReagentCreatedPayload struct {
	Name     string          `json:"name"`
	Sector   string          `json:"sector"`
	Quantity float64         `json:"quantity"`
	Unit     domain.UnitType `json:"unit"`
}

// ReagentUpdatedPayload payload.
type ReagentUpdatedPayload struct {
	Name         string                    `json:"name"`
	Verification domain.VerificationStatus `json:"verification"`
}

// ReagentDeletedPayload payload.
type ReagentDeletedPayload struct {
	Name   string `json:"name"`
	Sector string `json:"sector"`
}
