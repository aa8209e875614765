package implementation

import (
	"context"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/mapper"
	"ai-tireshop-be/internal/model"
	"ai-tireshop-be/internal/repository/contract"
	"ai-tireshop-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecs(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// CompanyInfo

type CompanyInfoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCompanyInfoRepository(db *gorm.DB) contract.CompanyInfoRepository {
	return &CompanyInfoRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *CompanyInfoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyInfo, error) {
	var models []*model.CompanyInfo
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CompanyInfo, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CompanyInfoToEntity(m)
	}
	return entities, nil
}

// SiteSetting

type SiteSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewSiteSettingRepository(db *gorm.DB) contract.SiteSettingRepository {
	return &SiteSettingRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *SiteSettingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SiteSetting, error) {
	var models []*model.SiteSetting
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SiteSetting, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SiteSettingToEntity(m)
	}
	return entities, nil
}

// FAQ

type FAQRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewFAQRepository(db *gorm.DB) contract.FAQRepository {
	return &FAQRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *FAQRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQEntry, error) {
	var models []*model.FAQEntry
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FAQEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FAQToEntity(m)
	}
	return entities, nil
}

// ServiceItem

type ServiceItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewServiceItemRepository(db *gorm.DB) contract.ServiceItemRepository {
	return &ServiceItemRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *ServiceItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceItem, error) {
	var models []*model.ServiceItem
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceItem, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ServiceItemToEntity(m)
	}
	return entities, nil
}

// Policy

type PolicyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewPolicyRepository(db *gorm.DB) contract.PolicyRepository {
	return &PolicyRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *PolicyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Policy, error) {
	var models []*model.Policy
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Policy, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PolicyToEntity(m)
	}
	return entities, nil
}

// Product

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{db: db, mapper: mapper.NewCatalogMapper()}
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	if err := applySpecs(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Product, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProductToEntity(m)
	}
	return entities, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecs(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
