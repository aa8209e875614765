package entity

import "github.com/google/uuid"

// CompanyInfo is one fact about the shop (contact, location, hours),
// grouped by category then key.
type CompanyInfo struct {
	Category     string
	Key          string
	Value        string
	DisplayOrder int
}

// SiteSetting is a global key/value setting (GST rate, local delivery zone...).
type SiteSetting struct {
	Key   string
	Value string
}

type FAQEntry struct {
	Question     string
	Answer       string
	DisplayOrder int
	IsActive     bool
}

type ServiceItem struct {
	Name         string
	Description  string
	PriceNote    string
	DisplayOrder int
	IsActive     bool
}

type Policy struct {
	Slug     string
	Title    string
	Body     string
	IsActive bool
}

// Product is one catalog row. Size is free-form as stored by the back office;
// matching against it is substring-based on purpose.
type Product struct {
	Id           uuid.UUID
	Size         string
	Vendor       string
	Type         string
	Price        float64
	Availability string
	Description  string
	IsActive     bool
}
