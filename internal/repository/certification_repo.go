package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"anchorchain/internal/domain"
)

type CertificationRepository struct {
	db *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func (r *CertificationRepository) Create(ctx context.Context, cert *domain.Certification) error {
	return r.db.WithContext(ctx).Create(cert).Error
}

func (r *CertificationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Certification{}).Count(&count).Error
	return count, err
}

// CountValidAt counts certifications whose validity window is still open at
// the reference time.
func (r *CertificationRepository) CountValidAt(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Certification{}).
		Where("valid_to > ?", now.UTC()).
		Count(&count).Error
	return count, err
}

func (r *CertificationRepository) CountExpiredAt(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Certification{}).
		Where("valid_to <= ?", now.UTC()).
		Count(&count).Error
	return count, err
}
