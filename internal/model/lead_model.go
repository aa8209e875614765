package model

import (
	"time"

	"github.com/google/uuid"
)

// Lead carries a unique index on conversation_id so concurrent qualifying
// messages in one conversation cannot produce duplicate rows; writes go
// through an ON CONFLICT upsert.
type Lead struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	SessionId      string    `gorm:"type:varchar(100);not null;index"`
	LeadType       string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(254)"`
	Phone          string    `gorm:"type:varchar(20)"`
	TireSize       string    `gorm:"type:varchar(20)"`
	Notes          string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'new'"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
