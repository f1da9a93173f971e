package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anchorchain/internal/domain"
)

type SourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

func (r *SourceRepository) GetActive(ctx context.Context) ([]domain.SourceCatalog, error) {
	var sources []domain.SourceCatalog
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&sources).Error
	return sources, err
}

// Upsert inserts the source or leaves an existing row with the same name in
// place, for idempotent seeding.
func (r *SourceRepository) Upsert(ctx context.Context, s *domain.SourceCatalog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(s).Error
}
