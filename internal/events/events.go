package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope published to the message broker for every
// domain event emitted by the onboarding service.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// Event types emitted by the onboarding service
const (
	EventCarrierRegistered  = "onboarding.carrier_registered"
	EventShipperRegistered  = "onboarding.shipper_registered"
	EventStatusChanged      = "onboarding.status_changed"
	EventAccountDeleted     = "onboarding.account_deleted"
	EventAdminNotification  = "admin.new_application"
	EventOnboardingAdvanced = "onboarding.step_advanced"
)

// NewEvent builds an event envelope with identity and timing filled in.
func NewEvent(eventType string, data map[string]interface{}) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    "onboarding-service",
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events to the message broker
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}
