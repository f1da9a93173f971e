package directory

import (
	"context"
	"fmt"
	"time"

	"anchorchain/internal/domain"
	"anchorchain/internal/repository"
)

const (
	compareMin = 2
	compareMax = 4
)

type ListOptions struct {
	CountryCode   string
	Certification string
	Grade         string
	Search        string
	Page          repository.Pagination
}

type Service struct {
	manufacturers ManufacturerStore
	certs         CertificationStore
	products      ProductStore
	facilities    FacilityStore
	news          NewsCounter
	now           func() time.Time
}

func NewService(
	manufacturers ManufacturerStore,
	certs CertificationStore,
	products ProductStore,
	facilities FacilityStore,
	news NewsCounter,
) *Service {
	return &Service{
		manufacturers: manufacturers,
		certs:         certs,
		products:      products,
		facilities:    facilities,
		news:          news,
		now:           time.Now,
	}
}

// List returns the public (verified) manufacturer listing. Unknown
// certification or grade codes are rejected instead of matching nothing by
// accident.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]ManufacturerView, int64, error) {
	if opts.Certification != "" && !domain.IsClassSociety(opts.Certification) {
		return nil, 0, fmt.Errorf("%w: unknown classification society %q", ErrValidation, opts.Certification)
	}
	if opts.Grade != "" {
		if _, ok := domain.ParseGrade(opts.Grade); !ok {
			return nil, 0, fmt.Errorf("%w: unknown grade %q", ErrValidation, opts.Grade)
		}
	}

	filters := repository.ManufacturerFilters{
		Status:        domain.ProfileVerified,
		CountryCode:   opts.CountryCode,
		Certification: opts.Certification,
		Grade:         opts.Grade,
		Search:        opts.Search,
	}

	manufacturers, total, err := s.manufacturers.GetAll(ctx, filters, opts.Page)
	if err != nil {
		return nil, 0, err
	}

	now := s.now().UTC()
	views := make([]ManufacturerView, len(manufacturers))
	for i, m := range manufacturers {
		views[i] = toManufacturerView(m, now)
	}

	return views, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ManufacturerView, error) {
	m, err := s.manufacturers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := toManufacturerView(*m, s.now().UTC())

	newsCount, err := s.news.CountForManufacturer(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	view.Counts.NewsItems = newsCount

	return &view, nil
}

// Compare loads full records for a side-by-side view of 2 to 4 manufacturers.
func (s *Service) Compare(ctx context.Context, ids []string) ([]ManufacturerView, error) {
	if len(ids) < compareMin || len(ids) > compareMax {
		return nil, fmt.Errorf("%w: compare takes %d to %d ids", ErrValidation, compareMin, compareMax)
	}

	manufacturers, err := s.manufacturers.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	views := make([]ManufacturerView, len(manufacturers))
	for i, m := range manufacturers {
		views[i] = toManufacturerView(m, now)
	}

	return views, nil
}

// Create registers a manufacturer. New profiles always start out pending;
// verification is a separate process.
func (s *Service) Create(ctx context.Context, req CreateManufacturerRequest) (*domain.Manufacturer, error) {
	if req.LegalName == "" || len(req.CountryCode) != 2 {
		return nil, fmt.Errorf("%w: legal name and a two-letter country code are required", ErrValidation)
	}

	exists, err := s.manufacturers.ExistsByNameAndCountry(ctx, req.LegalName, req.CountryCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: manufacturer %q (%s)", ErrDuplicate, req.LegalName, req.CountryCode)
	}

	m := &domain.Manufacturer{
		LegalName:     req.LegalName,
		Brand:         req.Brand,
		Aliases:       req.Aliases,
		CountryCode:   req.CountryCode,
		Address:       req.Address,
		Longitude:     req.Longitude,
		Latitude:      req.Latitude,
		FoundedYear:   req.FoundedYear,
		SiteURL:       req.SiteURL,
		PublicEmails:  req.PublicEmails,
		Phones:        req.Phones,
		ProfileStatus: domain.ProfilePending,
	}

	if err := s.manufacturers.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// AddCertification attaches a certification after enforcing the validity
// window and classification-society vocabulary at the boundary.
func (s *Service) AddCertification(ctx context.Context, manufacturerID string, req CreateCertificationRequest) (*domain.Certification, error) {
	if !domain.IsClassSociety(req.ClassBody) {
		return nil, fmt.Errorf("%w: unknown classification society %q", ErrValidation, req.ClassBody)
	}
	if req.ValidFrom.After(req.ValidTo) {
		return nil, fmt.Errorf("%w: valid_from must not be after valid_to", ErrValidation)
	}

	if _, err := s.manufacturers.GetByID(ctx, manufacturerID); err != nil {
		return nil, err
	}

	cert := &domain.Certification{
		ManufacturerID: manufacturerID,
		ClassBody:      req.ClassBody,
		CertCode:       req.CertCode,
		Scope:          req.Scope,
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
		Status:         domain.CertificationStatusAt(req.ValidTo, s.now().UTC()),
	}

	if err := s.certs.Create(ctx, cert); err != nil {
		return nil, err
	}

	return cert, nil
}

// AddProduct attaches a product after enforcing the diameter window and the
// category/grade/treatment vocabularies.
func (s *Service) AddProduct(ctx context.Context, manufacturerID string, req CreateProductRequest) (*domain.Product, error) {
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}
	grade, ok := domain.ParseGrade(req.Grade)
	if !ok {
		return nil, fmt.Errorf("%w: unknown grade %q", ErrValidation, req.Grade)
	}
	if req.DiameterMin <= 0 || req.DiameterMin > req.DiameterMax {
		return nil, fmt.Errorf("%w: diameter window must satisfy 0 < min <= max", ErrValidation)
	}
	for _, t := range req.Treatments {
		if !domain.IsTreatment(t) {
			return nil, fmt.Errorf("%w: unknown surface treatment %q", ErrValidation, t)
		}
	}

	if _, err := s.manufacturers.GetByID(ctx, manufacturerID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ManufacturerID: manufacturerID,
		Category:       category,
		Grade:          grade,
		DiameterMin:    req.DiameterMin,
		DiameterMax:    req.DiameterMax,
		Treatments:     req.Treatments,
		Standards:      req.Standards,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) AddFacility(ctx context.Context, manufacturerID string, req CreateFacilityRequest) (*domain.Facility, error) {
	if req.Name == "" || req.AnnualCapacity <= 0 {
		return nil, fmt.Errorf("%w: facility needs a name and a positive annual capacity", ErrValidation)
	}

	if _, err := s.manufacturers.GetByID(ctx, manufacturerID); err != nil {
		return nil, err
	}

	facility := &domain.Facility{
		ManufacturerID:  manufacturerID,
		Name:            req.Name,
		Address:         req.Address,
		Longitude:       req.Longitude,
		Latitude:        req.Latitude,
		AnnualCapacity:  req.AnnualCapacity,
		ProductionLines: req.ProductionLines,
	}

	if err := s.facilities.Create(ctx, facility); err != nil {
		return nil, err
	}

	return facility, nil
}
