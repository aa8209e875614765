package main

import (
	"log"
	"os"

	"ai-tireshop-be/internal/model"
	"ai-tireshop-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the grounding tables with a starter data set so the assistant has
// something to talk about on a fresh install. Idempotent: existing rows are
// updated, not duplicated.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedCompanyInfo(db)
	seedSiteSettings(db)
	seedFAQ(db)
	seedServices(db)
	seedPolicies(db)
	seedProducts(db)

	log.Println("✅ Success: Seed data applied.")
}

func seedCompanyInfo(db *gorm.DB) {
	rows := []model.CompanyInfo{
		{Category: "contact", Key: "phone", Value: "780-555-0137", DisplayOrder: 1},
		{Category: "contact", Key: "email", Value: "sales@prairietire.example", DisplayOrder: 2},
		{Category: "location", Key: "address", Value: "4210 97 St NW, Edmonton, AB", DisplayOrder: 1},
		{Category: "hours", Key: "weekdays", Value: "Mon-Fri 8:00-18:00", DisplayOrder: 1},
		{Category: "hours", Key: "saturday", Value: "Sat 9:00-16:00", DisplayOrder: 2},
		{Category: "hours", Key: "sunday", Value: "Closed", DisplayOrder: 3},
	}
	for _, row := range rows {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "display_order"}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("Warn: company_info seed failed for %s/%s: %v", row.Category, row.Key, err)
		}
	}
}

func seedSiteSettings(db *gorm.DB) {
	rows := []model.SiteSetting{
		{Key: "gst_rate", Value: "5%"},
		{Key: "local_delivery_zone", Value: "Edmonton and Sherwood Park"},
	}
	for _, row := range rows {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("Warn: site_settings seed failed for %s: %v", row.Key, err)
		}
	}
}

func seedFAQ(db *gorm.DB) {
	rows := []model.FAQEntry{
		{Question: "Do you install tires bought elsewhere?", Answer: "Yes, installation is available for any tires. Mounting and balancing are charged per wheel.", DisplayOrder: 1, IsActive: true},
		{Question: "Do you do tire repairs?", Answer: "We repair punctures in the tread area when the tire is otherwise sound. Sidewall damage cannot be repaired.", DisplayOrder: 2, IsActive: true},
		{Question: "Can I store my off-season tires with you?", Answer: "Seasonal tire storage is available per set per season. Ask in store for current rates.", DisplayOrder: 3, IsActive: true},
	}
	for _, row := range rows {
		var existing model.FAQEntry
		err := db.Where("question = ?", row.Question).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			err = db.Create(&row).Error
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Printf("Warn: faq seed failed: %v", err)
		}
	}
}

func seedServices(db *gorm.DB) {
	rows := []model.ServiceItem{
		{Name: "Tire installation", Description: "Mounting, balancing and valve stems", PriceNote: "from $25/wheel", DisplayOrder: 1, IsActive: true},
		{Name: "Seasonal changeover", Description: "Swap between summer and winter sets on rims", PriceNote: "from $60/set", DisplayOrder: 2, IsActive: true},
		{Name: "Flat repair", Description: "Puncture repair in the tread area", PriceNote: "from $35", DisplayOrder: 3, IsActive: true},
		{Name: "Wheel alignment", Description: "Four-wheel computerized alignment", PriceNote: "from $110", DisplayOrder: 4, IsActive: true},
	}
	for _, row := range rows {
		var existing model.ServiceItem
		err := db.Where("name = ?", row.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			err = db.Create(&row).Error
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Printf("Warn: service seed failed: %v", err)
		}
	}
}

func seedPolicies(db *gorm.DB) {
	rows := []model.Policy{
		{Slug: "payment", Title: "Payment", Body: "We accept cash and card in person at the shop. Online payment is not available.", IsActive: true},
		{Slug: "shipping", Title: "Shipping", Body: "Local delivery is available within our delivery zone. Shipping details are confirmed after an order is placed.", IsActive: true},
		{Slug: "returns", Title: "Returns", Body: "Unused tires in original condition may be returned within 30 days with receipt.", IsActive: true},
	}
	for _, row := range rows {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "body", "is_active"}),
		}).Create(&row).Error
		if err != nil {
			log.Printf("Warn: policy seed failed for %s: %v", row.Slug, err)
		}
	}
}

func seedProducts(db *gorm.DB) {
	rows := []model.Product{
		{Size: "225/65R17", Vendor: "Michelin", Type: "all_season", Price: 218.99, Availability: "in_stock", Description: "Defender LTX M/S", IsActive: true},
		{Size: "225/65R17", Vendor: "Bridgestone", Type: "winter", Price: 189.50, Availability: "in_stock", Description: "Blizzak WS90", IsActive: true},
		{Size: "205/55R16", Vendor: "Continental", Type: "all_season", Price: 142.00, Availability: "in_stock", Description: "TrueContact Tour", IsActive: true},
		{Size: "205/55R16", Vendor: "Goodyear", Type: "winter", Price: 156.75, Availability: "order_in", Description: "WinterCommand Ultra", IsActive: true},
		{Size: "265/70R17", Vendor: "BFGoodrich", Type: "all_terrain", Price: 289.00, Availability: "in_stock", Description: "All-Terrain T/A KO2", IsActive: true},
		{Size: "195/65R15", Vendor: "Hankook", Type: "all_season", Price: 109.99, Availability: "in_stock", Description: "Kinergy PT", IsActive: true},
	}
	for _, row := range rows {
		var existing model.Product
		err := db.Where("size = ? AND vendor = ? AND type = ?", row.Size, row.Vendor, row.Type).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			err = db.Create(&row).Error
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Printf("Warn: product seed failed: %v", err)
		}
	}
}
