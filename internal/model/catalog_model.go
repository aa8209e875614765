package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyInfo struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	Category     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_info_category_key"`
	Key          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_company_info_category_key"`
	Value        string    `gorm:"type:text;not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (CompanyInfo) TableName() string {
	return "company_info"
}

type SiteSetting struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}

type FAQEntry struct {
	Id           uint   `gorm:"primaryKey;autoIncrement"`
	Question     string `gorm:"type:text;not null"`
	Answer       string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true;index"`
}

func (FAQEntry) TableName() string {
	return "faq_entries"
}

type ServiceItem struct {
	Id           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(200);not null"`
	Description  string `gorm:"type:text"`
	PriceNote    string `gorm:"type:varchar(100)"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true;index"`
}

func (ServiceItem) TableName() string {
	return "service_items"
}

type Policy struct {
	Id       uint   `gorm:"primaryKey;autoIncrement"`
	Slug     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Title    string `gorm:"type:varchar(200);not null"`
	Body     string `gorm:"type:text;not null"`
	IsActive bool   `gorm:"not null;default:true;index"`
}

func (Policy) TableName() string {
	return "policies"
}

type Product struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Size         string    `gorm:"type:varchar(50);not null;index"`
	Vendor       string    `gorm:"type:varchar(100);not null"`
	Type         string    `gorm:"type:varchar(50)"`
	Price        float64   `gorm:"type:numeric(10,2);not null"`
	Availability string    `gorm:"type:varchar(50);not null;default:'in_stock'"`
	Description  string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
