package service

import (
	"context"

	"ai-tireshop-be/internal/dto"
	"ai-tireshop-be/internal/repository/specification"
	"ai-tireshop-be/internal/repository/unitofwork"
)

type IAdminService interface {
	GetLeads(ctx context.Context, limit, offset int) (*dto.PagedResponse[dto.LeadListItem], error)
	GetConversations(ctx context.Context, limit, offset int) (*dto.PagedResponse[dto.ConversationListItem], error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory) IAdminService {
	return &adminService{uowFactory: uowFactory}
}

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (as *adminService) GetLeads(ctx context.Context, limit, offset int) (*dto.PagedResponse[dto.LeadListItem], error) {
	limit, offset = clampPage(limit, offset)
	uow := as.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LeadRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	leads, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LeadListItem, len(leads))
	for i, lead := range leads {
		items[i] = dto.LeadListItem{
			Id:             lead.Id,
			ConversationId: lead.ConversationId,
			SessionId:      lead.SessionId,
			LeadType:       lead.LeadType,
			Email:          lead.Email,
			Phone:          lead.Phone,
			TireSize:       lead.TireSize,
			Notes:          lead.Notes,
			Status:         lead.Status,
			CreatedAt:      lead.CreatedAt,
		}
	}

	return &dto.PagedResponse[dto.LeadListItem]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (as *adminService) GetConversations(ctx context.Context, limit, offset int) (*dto.PagedResponse[dto.ConversationListItem], error) {
	limit, offset = clampPage(limit, offset)
	uow := as.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ConversationRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	conversations, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ConversationListItem, len(conversations))
	for i, conv := range conversations {
		items[i] = dto.ConversationListItem{
			Id:           conv.Id,
			SessionId:    conv.SessionId,
			Channel:      conv.Channel,
			Intent:       conv.Intent,
			MessageCount: len(conv.Messages),
			UpdatedAt:    conv.UpdatedAt,
		}
	}

	return &dto.PagedResponse[dto.ConversationListItem]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
