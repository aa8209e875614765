package mapper

import (
	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) CompanyInfoToEntity(c *model.CompanyInfo) *entity.CompanyInfo {
	if c == nil {
		return nil
	}
	return &entity.CompanyInfo{
		Category:     c.Category,
		Key:          c.Key,
		Value:        c.Value,
		DisplayOrder: c.DisplayOrder,
	}
}

func (m *CatalogMapper) SiteSettingToEntity(s *model.SiteSetting) *entity.SiteSetting {
	if s == nil {
		return nil
	}
	return &entity.SiteSetting{Key: s.Key, Value: s.Value}
}

func (m *CatalogMapper) FAQToEntity(f *model.FAQEntry) *entity.FAQEntry {
	if f == nil {
		return nil
	}
	return &entity.FAQEntry{
		Question:     f.Question,
		Answer:       f.Answer,
		DisplayOrder: f.DisplayOrder,
		IsActive:     f.IsActive,
	}
}

func (m *CatalogMapper) ServiceItemToEntity(s *model.ServiceItem) *entity.ServiceItem {
	if s == nil {
		return nil
	}
	return &entity.ServiceItem{
		Name:         s.Name,
		Description:  s.Description,
		PriceNote:    s.PriceNote,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
	}
}

func (m *CatalogMapper) PolicyToEntity(p *model.Policy) *entity.Policy {
	if p == nil {
		return nil
	}
	return &entity.Policy{
		Slug:     p.Slug,
		Title:    p.Title,
		Body:     p.Body,
		IsActive: p.IsActive,
	}
}

func (m *CatalogMapper) ProductToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:           p.Id,
		Size:         p.Size,
		Vendor:       p.Vendor,
		Type:         p.Type,
		Price:        p.Price,
		Availability: p.Availability,
		Description:  p.Description,
		IsActive:     p.IsActive,
	}
}
