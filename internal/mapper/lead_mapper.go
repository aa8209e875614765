package mapper

import (
	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:             l.Id,
		ConversationId: l.ConversationId,
		SessionId:      l.SessionId,
		LeadType:       l.LeadType,
		Email:          l.Email,
		Phone:          l.Phone,
		TireSize:       l.TireSize,
		Notes:          l.Notes,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:             l.Id,
		ConversationId: l.ConversationId,
		SessionId:      l.SessionId,
		LeadType:       l.LeadType,
		Email:          l.Email,
		Phone:          l.Phone,
		TireSize:       l.TireSize,
		Notes:          l.Notes,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
