package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"anchorchain/internal/domain"
	"anchorchain/internal/repository"
)

type MockManufacturerStore struct {
	mock.Mock
}

func (m *MockManufacturerStore) GetAll(ctx context.Context, f repository.ManufacturerFilters, p repository.Pagination) ([]domain.Manufacturer, int64, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Manufacturer), args.Get(1).(int64), args.Error(2)
}

func (m *MockManufacturerStore) GetByID(ctx context.Context, id string) (*domain.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manufacturer), args.Error(1)
}

func (m *MockManufacturerStore) GetByIDs(ctx context.Context, ids []string) ([]domain.Manufacturer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Manufacturer), args.Error(1)
}

func (m *MockManufacturerStore) ExistsByNameAndCountry(ctx context.Context, legalName, countryCode string) (bool, error) {
	args := m.Called(ctx, legalName, countryCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockManufacturerStore) Create(ctx context.Context, mf *domain.Manufacturer) error {
	args := m.Called(ctx, mf)
	if mf != nil && mf.ID == "" {
		mf.ID = "generated-id"
	}
	return args.Error(0)
}

type MockCertificationStore struct {
	mock.Mock
}

func (m *MockCertificationStore) Create(ctx context.Context, cert *domain.Certification) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockFacilityStore struct {
	mock.Mock
}

func (m *MockFacilityStore) Create(ctx context.Context, f *domain.Facility) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

type MockNewsCounter struct {
	mock.Mock
}

func (m *MockNewsCounter) CountForManufacturer(ctx context.Context, manufacturerID string) (int64, error) {
	args := m.Called(ctx, manufacturerID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *MockManufacturerStore, *MockCertificationStore, *MockProductStore, *MockFacilityStore, *MockNewsCounter) {
	manufacturers := new(MockManufacturerStore)
	certs := new(MockCertificationStore)
	products := new(MockProductStore)
	facilities := new(MockFacilityStore)
	news := new(MockNewsCounter)
	svc := NewService(manufacturers, certs, products, facilities, news)
	return svc, manufacturers, certs, products, facilities, news
}

func TestService_List_OnlyVerifiedProfiles(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()

	manufacturers.On("GetAll", mock.Anything,
		mock.MatchedBy(func(f repository.ManufacturerFilters) bool {
			return f.Status == domain.ProfileVerified && f.Grade == "U3" && f.CountryCode == "CN"
		}),
		mock.Anything,
	).Return([]domain.Manufacturer{}, int64(0), nil)

	_, total, err := svc.List(context.Background(), ListOptions{
		CountryCode: "CN",
		Grade:       "U3",
		Page:        repository.Pagination{Page: 1, Limit: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	manufacturers.AssertExpectations(t)
}

func TestService_List_RejectsUnknownGrade(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, _, err := svc.List(context.Background(), ListOptions{Grade: "U9"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_RejectsUnknownClassSociety(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, _, err := svc.List(context.Background(), ListOptions{Certification: "NOPE"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_DerivesCertificationStatus(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	manufacturers.On("GetAll", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Manufacturer{
			{
				LegalName:   "Jiangsu Anchor Chain Co., Ltd.",
				CountryCode: "CN",
				Certifications: []domain.Certification{
					{CertCode: "LR-1", ValidTo: now.AddDate(2, 0, 0)},
					{CertCode: "ABS-1", ValidTo: now.Add(30 * 24 * time.Hour)},
				},
			},
		}, int64(1), nil)

	views, _, err := svc.List(context.Background(), ListOptions{
		Page: repository.Pagination{Page: 1, Limit: 10},
	})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "cn-jiangsu-anchor-chain-co-ltd", views[0].Slug)
	require.Len(t, views[0].Certifications, 2)
	assert.Equal(t, domain.CertActive, views[0].Certifications[0].Status)
	assert.Equal(t, domain.CertExpiring, views[0].Certifications[1].Status)
}

func TestService_Create_DefaultsToPending(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()

	manufacturers.On("ExistsByNameAndCountry", mock.Anything, "Hamanaka Chain Mfg.", "JP").
		Return(false, nil)
	manufacturers.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Manufacturer) bool {
		return m.ProfileStatus == domain.ProfilePending && m.LastVerifiedAt == nil
	})).Return(nil)

	m, err := svc.Create(context.Background(), CreateManufacturerRequest{
		LegalName:   "Hamanaka Chain Mfg.",
		CountryCode: "JP",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProfilePending, m.ProfileStatus)
	manufacturers.AssertExpectations(t)
}

func TestService_Create_RequiresNameAndCountry(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateManufacturerRequest{LegalName: "X"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateManufacturerRequest{CountryCode: "CN"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RejectsDuplicate(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()

	manufacturers.On("ExistsByNameAndCountry", mock.Anything, "CMP Group", "IT").
		Return(true, nil)

	_, err := svc.Create(context.Background(), CreateManufacturerRequest{
		LegalName:   "CMP Group",
		CountryCode: "IT",
	})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_AddCertification_RejectsInvertedWindow(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.AddCertification(context.Background(), "m1", CreateCertificationRequest{
		ClassBody: "LR",
		CertCode:  "LR-000001",
		ValidFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AddCertification_UnknownManufacturer(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()

	manufacturers.On("GetByID", mock.Anything, "missing").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddCertification(context.Background(), "missing", CreateCertificationRequest{
		ClassBody: "LR",
		CertCode:  "LR-000001",
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestService_AddCertification_Success(t *testing.T) {
	svc, manufacturers, certs, _, _, _ := newTestService()

	manufacturers.On("GetByID", mock.Anything, "m1").
		Return(&domain.Manufacturer{ID: "m1"}, nil)
	certs.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Certification) bool {
		return c.ManufacturerID == "m1" && c.ClassBody == "DNV"
	})).Return(nil)

	cert, err := svc.AddCertification(context.Background(), "m1", CreateCertificationRequest{
		ClassBody: "DNV",
		CertCode:  "DNV-000001",
		ValidFrom: time.Now().UTC(),
		ValidTo:   time.Now().UTC().AddDate(3, 0, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, "DNV-000001", cert.CertCode)
	certs.AssertExpectations(t)
}

func TestService_AddProduct_Validation(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "m1", CreateProductRequest{
		Category: "chainmail", Grade: "U2", DiameterMin: 16, DiameterMax: 100,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddProduct(ctx, "m1", CreateProductRequest{
		Category: "stud", Grade: "U7", DiameterMin: 16, DiameterMax: 100,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddProduct(ctx, "m1", CreateProductRequest{
		Category: "stud", Grade: "U2", DiameterMin: 120, DiameterMax: 20,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddProduct(ctx, "m1", CreateProductRequest{
		Category: "stud", Grade: "U2", DiameterMin: 16, DiameterMax: 100,
		Treatments: []string{"chromed"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AddFacility_RequiresPositiveCapacity(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	_, err := svc.AddFacility(context.Background(), "m1", CreateFacilityRequest{
		Name:           "Main Plant",
		AnnualCapacity: 0,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Compare_IDCountBounds(t *testing.T) {
	svc, manufacturers, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Compare(ctx, []string{"one"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Compare(ctx, []string{"a", "b", "c", "d", "e"})
	assert.ErrorIs(t, err, ErrValidation)

	manufacturers.On("GetByIDs", mock.Anything, []string{"a", "b"}).
		Return([]domain.Manufacturer{{ID: "a"}, {ID: "b"}}, nil)

	views, err := svc.Compare(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestService_Get_AttachesNewsCount(t *testing.T) {
	svc, manufacturers, _, _, _, news := newTestService()

	manufacturers.On("GetByID", mock.Anything, "m1").
		Return(&domain.Manufacturer{ID: "m1", LegalName: "X", CountryCode: "CN"}, nil)
	news.On("CountForManufacturer", mock.Anything, "m1").Return(int64(7), nil)

	view, err := svc.Get(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), view.Counts.NewsItems)
	assert.Equal(t, "China", view.CountryName)
}
