package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StatsRepository aggregates the probe queries used by the health and metrics
// endpoints.
type StatsRepository struct {
	db            *gorm.DB
	manufacturers *ManufacturerRepository
	news          *NewsRepository
	certs         *CertificationRepository
}

func NewStatsRepository(
	db *gorm.DB,
	manufacturers *ManufacturerRepository,
	news *NewsRepository,
	certs *CertificationRepository,
) *StatsRepository {
	return &StatsRepository{db: db, manufacturers: manufacturers, news: news, certs: certs}
}

func (r *StatsRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *StatsRepository) ManufacturerCount(ctx context.Context) (int64, error) {
	return r.manufacturers.Count(ctx)
}

func (r *StatsRepository) NewsCount(ctx context.Context) (int64, error) {
	return r.news.Count(ctx)
}

func (r *StatsRepository) NewsActiveCount(ctx context.Context) (int64, error) {
	return r.news.CountActive(ctx)
}

func (r *StatsRepository) CertificationCount(ctx context.Context) (int64, error) {
	return r.certs.Count(ctx)
}

func (r *StatsRepository) CertificationValidCount(ctx context.Context, now time.Time) (int64, error) {
	return r.certs.CountValidAt(ctx, now)
}

func (r *StatsRepository) CertificationExpiredCount(ctx context.Context, now time.Time) (int64, error) {
	return r.certs.CountExpiredAt(ctx, now)
}
