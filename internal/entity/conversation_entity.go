package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one turn of a transcript. Immutable once appended.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is the persisted transcript for one client session. Messages
// only ever grow; Intent and RecommendedProducts reflect the latest message.
type Conversation struct {
	Id                  uuid.UUID
	SessionId           string
	Channel             string
	Intent              string
	Messages            []ChatMessage
	RecommendedProducts []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
