package repository

import (
	"context"

	"gorm.io/gorm"

	"anchorchain/internal/domain"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) GetAll(
	ctx context.Context,
	status domain.BidStatus,
	p Pagination,
) ([]domain.BidProject, int64, error) {

	var bids []domain.BidProject
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.BidProject{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("deadline ASC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&bids).Error

	return bids, total, err
}

func (r *BidRepository) Create(ctx context.Context, b *domain.BidProject) error {
	return r.db.WithContext(ctx).Create(b).Error
}
