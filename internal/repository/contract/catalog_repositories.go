package contract

import (
	"context"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/repository/specification"
)

// Grounding tables are read-only to this service; the admin back office owns
// their writes.

type CompanyInfoRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyInfo, error)
}

type SiteSettingRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SiteSetting, error)
}

type FAQRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQEntry, error)
}

type ServiceItemRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceItem, error)
}

type PolicyRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Policy, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
