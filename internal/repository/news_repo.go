package repository

import (
	"context"

	"gorm.io/gorm"

	"anchorchain/internal/domain"
)

type NewsFilters struct {
	Status         domain.NewsStatus
	ManufacturerID string
	Category       string
}

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// GetAll returns a page of news items newest-first with the owning
// manufacturer attached.
func (r *NewsRepository) GetAll(
	ctx context.Context,
	f NewsFilters,
	p Pagination,
) ([]domain.NewsItem, int64, error) {

	var items []domain.NewsItem
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.NewsItem{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if f.ManufacturerID != "" {
		q = q.Where("manufacturer_id = ?", f.ManufacturerID)
	}

	if f.Category != "" {
		// Membership test against the JSON-serialized categories column;
		// portable between SQLite and PostgreSQL.
		q = q.Where("categories LIKE ?", `%"`+f.Category+`"%`)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Manufacturer").
		Order("published_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error

	return items, total, err
}

// ExistsByURLAndTitle backs the informal (url, title) uniqueness applied at
// ingest time.
func (r *NewsRepository) ExistsByURLAndTitle(ctx context.Context, url, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.NewsItem{}).
		Where("url = ? AND title = ?", url, title).
		Count(&count).Error
	return count > 0, err
}

func (r *NewsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *NewsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.NewsItem{}).Count(&count).Error
	return count, err
}

func (r *NewsRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.NewsItem{}).
		Where("status = ?", domain.NewsActive).
		Count(&count).Error
	return count, err
}

func (r *NewsRepository) CountForManufacturer(ctx context.Context, manufacturerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.NewsItem{}).
		Where("manufacturer_id = ?", manufacturerID).
		Count(&count).Error
	return count, err
}
