package contract

import (
	"context"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/repository/specification"
)

type LeadRepository interface {
	// Upsert inserts the lead or, if one already exists for the same
	// conversation, patches its contact fields with any non-empty values
	// (existing values are never cleared). Returns true when a new row was
	// inserted. The dedup key is the unique index on conversation_id, so two
	// concurrent qualifying messages cannot create duplicate leads.
	Upsert(ctx context.Context, lead *entity.Lead) (created bool, err error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
