package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated         EventType = "user_created"
	EventUserUpdated         EventType = "user_updated"
	EventUserDeleted         EventType = "user_deleted"
	EventUserPasswordChanged EventType = "user_password_changed"
)

// Event represents a domain event emitted by services. Payloads never carry
// password material.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdatedPayload payload.
type UserUpdatedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
