package mapper

import (
	"encoding/json"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var messages []entity.ChatMessage
	if len(c.Messages) > 0 {
		// Rows written by this service always hold a valid array; tolerate
		// hand-edited rows by falling back to an empty transcript.
		if err := json.Unmarshal(c.Messages, &messages); err != nil {
			messages = nil
		}
	}

	return &entity.Conversation{
		Id:                  c.Id,
		SessionId:           c.SessionId,
		Channel:             c.Channel,
		Intent:              c.Intent,
		Messages:            messages,
		RecommendedProducts: c.RecommendedProducts,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	messages := c.Messages
	if messages == nil {
		messages = []entity.ChatMessage{}
	}
	raw, _ := json.Marshal(messages)

	return &model.Conversation{
		Id:                  c.Id,
		SessionId:           c.SessionId,
		Channel:             c.Channel,
		Intent:              c.Intent,
		Messages:            datatypes.JSON(raw),
		RecommendedProducts: datatypes.NewJSONSlice(c.RecommendedProducts),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
