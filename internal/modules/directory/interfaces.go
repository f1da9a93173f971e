package directory

import (
	"context"

	"anchorchain/internal/domain"
	"anchorchain/internal/repository"
)

type ManufacturerStore interface {
	GetAll(ctx context.Context, f repository.ManufacturerFilters, p repository.Pagination) ([]domain.Manufacturer, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Manufacturer, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Manufacturer, error)
	ExistsByNameAndCountry(ctx context.Context, legalName, countryCode string) (bool, error)
	Create(ctx context.Context, m *domain.Manufacturer) error
}

type CertificationStore interface {
	Create(ctx context.Context, cert *domain.Certification) error
}

type ProductStore interface {
	Create(ctx context.Context, p *domain.Product) error
}

type FacilityStore interface {
	Create(ctx context.Context, f *domain.Facility) error
}

type NewsCounter interface {
	CountForManufacturer(ctx context.Context, manufacturerID string) (int64, error)
}
