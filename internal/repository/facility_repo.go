package repository

import (
	"context"

	"gorm.io/gorm"

	"anchorchain/internal/domain"
)

type FacilityRepository struct {
	db *gorm.DB
}

func NewFacilityRepository(db *gorm.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	return r.db.WithContext(ctx).Create(f).Error
}
