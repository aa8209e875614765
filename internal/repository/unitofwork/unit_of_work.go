package unitofwork

import (
	"context"

	"ai-tireshop-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
	LeadRepository() contract.LeadRepository

	CompanyInfoRepository() contract.CompanyInfoRepository
	SiteSettingRepository() contract.SiteSettingRepository
	FAQRepository() contract.FAQRepository
	ServiceItemRepository() contract.ServiceItemRepository
	PolicyRepository() contract.PolicyRepository
	ProductRepository() contract.ProductRepository
}
