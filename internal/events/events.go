package events

import (
	"context"
	"time"
)

// TypeUserRegistered is the event type emitted after a successful registration.
const TypeUserRegistered = "user.registered"

// UserRegistered announces a new customer. It carries identity fields and the
// encrypted tokens only; plaintext PII never leaves the request.
type UserRegistered struct {
	Type            string            `json:"type"`
	UserID          string            `json:"user_id"`
	Email           string            `json:"email"`
	Name            string            `json:"name"`
	EncryptedFields map[string]string `json:"encrypted_fields"`
	OccurredAt      time.Time         `json:"occurred_at"`
}

// Publisher delivers events. *helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishJSON(context.Context, any) error { return nil }
