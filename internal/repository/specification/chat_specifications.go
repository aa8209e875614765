package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters conversations or leads by the client session string.
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByConversationID filters leads by their parent conversation.
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ActiveOnly keeps rows with is_active = true (grounding tables).
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// SizeContains keeps products whose free-form size field contains all three
// tire-size components as substrings, in any order. Deliberately loose to
// tolerate formatting variance in stored data; false positives are accepted.
type SizeContains struct {
	Width    string
	Aspect   string
	Diameter string
}

func (s SizeContains) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Where("size LIKE ?", "%"+s.Width+"%").
		Where("size LIKE ?", "%"+s.Aspect+"%").
		Where("size LIKE ?", "%"+s.Diameter+"%")
}
