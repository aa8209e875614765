package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a sales-qualified contact captured from a conversation. At most one
// lead exists per conversation; later messages patch contact fields but never
// clear previously captured values.
type Lead struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	SessionId      string
	LeadType       string
	Email          string
	Phone          string
	TireSize       string
	Notes          string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
