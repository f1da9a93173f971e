package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anchorchain/internal/domain"
)

// ManufacturerFilters translates the recognized listing options into query
// conditions. A zero-value field imposes no constraint; set fields combine
// as AND.
type ManufacturerFilters struct {
	Status        domain.ProfileStatus
	CountryCode   string
	Certification string // classification-society code, non-expired only
	Grade         string
	Search        string
}

type ManufacturerRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db, now: time.Now}
}

// WithClock overrides the reference time used for certification-window
// conditions. Query-time "now" must be injectable for tests.
func (r *ManufacturerRepository) WithClock(now func() time.Time) *ManufacturerRepository {
	return &ManufacturerRepository{db: r.db, now: now}
}

func (r *ManufacturerRepository) apply(q *gorm.DB, f ManufacturerFilters) *gorm.DB {
	if f.Status != "" {
		q = q.Where("profile_status = ?", f.Status)
	}

	if f.CountryCode != "" {
		q = q.Where("country_code = ?", f.CountryCode)
	}

	if f.Certification != "" {
		q = q.Where(
			`EXISTS (SELECT 1 FROM certifications
			 WHERE certifications.manufacturer_id = manufacturers.id
			   AND certifications.class_body = ?
			   AND certifications.valid_to > ?)`,
			f.Certification, r.now().UTC(),
		)
	}

	if f.Grade != "" {
		q = q.Where(
			`EXISTS (SELECT 1 FROM products
			 WHERE products.manufacturer_id = manufacturers.id
			   AND products.grade = ?)`,
			f.Grade,
		)
	}

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		// Alias membership checks the JSON-serialized array for the quoted
		// term, which works on both SQLite and PostgreSQL text columns.
		aliasPattern := `%"` + f.Search + `"%`
		q = q.Where(
			"LOWER(legal_name) LIKE ? OR LOWER(brand) LIKE ? OR aliases LIKE ?",
			pattern, pattern, aliasPattern,
		)
	}

	return q
}

// GetAll returns a page of manufacturers matching the filters plus the total
// match count. Non-expired certifications, products and facilities are
// eager-loaded; results are ordered by most recently verified first.
func (r *ManufacturerRepository) GetAll(
	ctx context.Context,
	f ManufacturerFilters,
	p Pagination,
) ([]domain.Manufacturer, int64, error) {

	var manufacturers []domain.Manufacturer
	var total int64

	q := r.apply(r.db.WithContext(ctx).Model(&domain.Manufacturer{}), f)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Certifications", "valid_to > ?", r.now().UTC()).
		Preload("Products").
		Preload("Facilities").
		Order("last_verified_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&manufacturers).Error

	return manufacturers, total, err
}

func (r *ManufacturerRepository) GetByID(ctx context.Context, id string) (*domain.Manufacturer, error) {
	var m domain.Manufacturer

	err := r.db.WithContext(ctx).
		Preload("Certifications").
		Preload("Products").
		Preload("Facilities").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *ManufacturerRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Manufacturer, error) {
	var manufacturers []domain.Manufacturer

	err := r.db.WithContext(ctx).
		Preload("Certifications", "valid_to > ?", r.now().UTC()).
		Preload("Products").
		Preload("Facilities").
		Find(&manufacturers, "id IN ?", ids).Error

	return manufacturers, err
}

func (r *ManufacturerRepository) ExistsByNameAndCountry(ctx context.Context, legalName, countryCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Manufacturer{}).
		Where("legal_name = ? AND country_code = ?", legalName, countryCode).
		Count(&count).Error
	return count > 0, err
}

func (r *ManufacturerRepository) Create(ctx context.Context, m *domain.Manufacturer) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Upsert inserts the manufacturer or leaves an existing row with the same
// legal name untouched, then loads the surviving row. Used for idempotent
// seeding.
func (r *ManufacturerRepository) Upsert(ctx context.Context, m *domain.Manufacturer) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "legal_name"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).First(m, "legal_name = ?", m.LegalName).Error
}

func (r *ManufacturerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Manufacturer{}).Count(&count).Error
	return count, err
}
