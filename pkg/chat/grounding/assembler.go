package grounding

import (
	"context"
	"sync"

	"ai-tireshop-be/internal/constant"
	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/pkg/logger"
	"ai-tireshop-be/internal/repository/specification"
	"ai-tireshop-be/internal/repository/unitofwork"
	"ai-tireshop-be/pkg/chat/extract"
)

// Bundle is the grounding context embedded into the system prompt. Every
// field is fetched fresh per request; nothing here is cached.
type Bundle struct {
	// CompanyInfo is grouped category -> key -> value.
	CompanyInfo map[string]map[string]string
	Settings    map[string]string
	FAQs        []*entity.FAQEntry
	Services    []*entity.ServiceItem
	Policies    []*entity.Policy
	Products    []*entity.Product
	// TireSize is the normalized WWW/AA/DD size pulled from the message,
	// empty when the message had none.
	TireSize string
}

// CompanyPhone returns the shop's phone number from the contact facts, or a
// neutral fallback when the table has no phone row.
func (b *Bundle) CompanyPhone() string {
	if contact, ok := b.CompanyInfo["contact"]; ok {
		if phone, ok := contact["phone"]; ok && phone != "" {
			return phone
		}
	}
	return constant.DefaultCompanyPhone
}

// Assembler gathers the grounding facts for one message. Queries run
// concurrently; an individual failure degrades context quality instead of
// aborting the request, so each result defaults to empty and the error is
// only logged.
type Assembler struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAssembler(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Assembler {
	return &Assembler{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (a *Assembler) Assemble(ctx context.Context, message string) *Bundle {
	uow := a.uowFactory.NewUnitOfWork(ctx)

	bundle := &Bundle{
		CompanyInfo: make(map[string]map[string]string),
		Settings:    make(map[string]string),
		TireSize:    extract.TireSize(message),
	}

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		rows, err := uow.CompanyInfoRepository().FindAll(ctx,
			specification.OrderBy{Field: "display_order"},
		)
		if err != nil {
			a.warn("company info", err)
			return
		}
		for _, row := range rows {
			if bundle.CompanyInfo[row.Category] == nil {
				bundle.CompanyInfo[row.Category] = make(map[string]string)
			}
			bundle.CompanyInfo[row.Category][row.Key] = row.Value
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := uow.SiteSettingRepository().FindAll(ctx)
		if err != nil {
			a.warn("site settings", err)
			return
		}
		for _, row := range rows {
			bundle.Settings[row.Key] = row.Value
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := uow.FAQRepository().FindAll(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "display_order"},
		)
		if err != nil {
			a.warn("faq entries", err)
			return
		}
		bundle.FAQs = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := uow.ServiceItemRepository().FindAll(ctx,
			specification.ActiveOnly{},
			specification.OrderBy{Field: "display_order"},
		)
		if err != nil {
			a.warn("service items", err)
			return
		}
		bundle.Services = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := uow.PolicyRepository().FindAll(ctx, specification.ActiveOnly{})
		if err != nil {
			a.warn("policies", err)
			return
		}
		bundle.Policies = rows
	}()

	go func() {
		defer wg.Done()
		rows, err := a.fetchProducts(ctx, uow, bundle.TireSize)
		if err != nil {
			a.warn("products", err)
			return
		}
		bundle.Products = rows
	}()

	wg.Wait()

	return bundle
}

// fetchProducts applies the loose size filter when the message carried a
// tire size, otherwise returns the full active catalog. Both paths are
// ordered availability then price, capped at the catalog row limit.
func (a *Assembler) fetchProducts(ctx context.Context, uow unitofwork.UnitOfWork, tireSize string) ([]*entity.Product, error) {
	specs := []specification.Specification{
		specification.ActiveOnly{},
	}

	if width, aspect, diameter, ok := extract.SizeParts(tireSize); ok {
		specs = append(specs, specification.SizeContains{
			Width:    width,
			Aspect:   aspect,
			Diameter: diameter,
		})
	}

	specs = append(specs,
		specification.OrderBy{Field: "availability"},
		specification.OrderBy{Field: "price"},
		specification.Limit{N: constant.MaxCatalogRows},
	)

	return uow.ProductRepository().FindAll(ctx, specs...)
}

func (a *Assembler) warn(query string, err error) {
	a.logger.Warn("Grounding", "grounding query failed, continuing with empty result", map[string]interface{}{
		"query": query,
		"error": err.Error(),
	})
}
