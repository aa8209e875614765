package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminListQuery struct {
	Limit  int `query:"limit" validate:"gte=0,lte=1000"`
	Offset int `query:"offset" validate:"gte=0"`
}

type LeadListItem struct {
	Id             uuid.UUID `json:"id"`
	ConversationId uuid.UUID `json:"conversation_id"`
	SessionId      string    `json:"session_id"`
	LeadType       string    `json:"lead_type"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	TireSize       string    `json:"tire_size,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationListItem struct {
	Id           uuid.UUID `json:"id"`
	SessionId    string    `json:"session_id"`
	Channel      string    `json:"channel"`
	Intent       string    `json:"intent,omitempty"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PagedResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
