package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conversation struct {
	Id                  uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId           string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Channel             string                      `gorm:"type:varchar(20);not null;default:'web'"`
	Intent              string                      `gorm:"type:varchar(50)"`
	Messages            datatypes.JSON              `gorm:"type:jsonb;not null;default:'[]'"`
	RecommendedProducts datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt           time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt           time.Time                   `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
