package implementation

import (
	"context"
	"errors"

	"ai-tireshop-be/internal/entity"
	"ai-tireshop-be/internal/mapper"
	"ai-tireshop-be/internal/model"
	"ai-tireshop-be/internal/repository/contract"
	"ai-tireshop-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LeadMapper
}

func NewLeadRepository(db *gorm.DB) contract.LeadRepository {
	return &LeadRepositoryImpl{
		db:     db,
		mapper: mapper.NewLeadMapper(),
	}
}

func (r *LeadRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert relies on the unique index on conversation_id. On conflict, new
// non-empty contact fields win via COALESCE(NULLIF(new, ''), old); empty
// values never clear what an earlier message captured. xmax = 0 is true only
// for freshly inserted rows, which tells us create from update without a
// second round trip.
func (r *LeadRepositoryImpl) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	if lead.Id == uuid.Nil {
		lead.Id = uuid.New()
	}

	var result struct {
		Id       uuid.UUID
		Inserted bool
	}

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO leads (id, conversation_id, session_id, lead_type, email, phone, tire_size, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (conversation_id) DO UPDATE SET
			lead_type  = EXCLUDED.lead_type,
			email      = COALESCE(NULLIF(EXCLUDED.email, ''), leads.email),
			phone      = COALESCE(NULLIF(EXCLUDED.phone, ''), leads.phone),
			tire_size  = COALESCE(NULLIF(EXCLUDED.tire_size, ''), leads.tire_size),
			updated_at = NOW()
		RETURNING id, (xmax = 0) AS inserted`,
		lead.Id, lead.ConversationId, lead.SessionId, lead.LeadType,
		lead.Email, lead.Phone, lead.TireSize, lead.Notes, lead.Status,
	).Scan(&result).Error
	if err != nil {
		return false, err
	}

	lead.Id = result.Id
	return result.Inserted, nil
}

func (r *LeadRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	var m model.Lead
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LeadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	var models []*model.Lead
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Lead, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LeadRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Lead{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
