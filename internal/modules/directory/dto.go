package directory

import (
	"time"

	"anchorchain/internal/domain"
)

type CreateManufacturerRequest struct {
	LegalName    string   `json:"legal_name" validate:"required"`
	Brand        string   `json:"brand"`
	Aliases      []string `json:"aliases"`
	CountryCode  string   `json:"country_code" validate:"required,len=2"`
	Address      string   `json:"address"`
	Longitude    float64  `json:"longitude"`
	Latitude     float64  `json:"latitude"`
	FoundedYear  *int     `json:"founded_year"`
	SiteURL      string   `json:"site_url"`
	PublicEmails []string `json:"public_emails"`
	Phones       []string `json:"phones"`
}

type CreateCertificationRequest struct {
	ClassBody string    `json:"class_body" validate:"required"`
	CertCode  string    `json:"cert_code" validate:"required"`
	Scope     string    `json:"scope"`
	ValidFrom time.Time `json:"valid_from" validate:"required"`
	ValidTo   time.Time `json:"valid_to" validate:"required"`
}

type CreateProductRequest struct {
	Category    string   `json:"category" validate:"required"`
	Grade       string   `json:"grade" validate:"required"`
	DiameterMin float64  `json:"diameter_min" validate:"required,gt=0"`
	DiameterMax float64  `json:"diameter_max" validate:"required,gt=0"`
	Treatments  []string `json:"treatments"`
	Standards   []string `json:"standards"`
}

type CreateFacilityRequest struct {
	Name            string   `json:"name" validate:"required"`
	Address         string   `json:"address"`
	Longitude       float64  `json:"longitude"`
	Latitude        float64  `json:"latitude"`
	AnnualCapacity  int      `json:"annual_capacity" validate:"required,gt=0"`
	ProductionLines []string `json:"production_lines"`
}

// CertificationView reports the status derived from the validity window at
// read time; the stored status column never reaches API responses.
type CertificationView struct {
	domain.Certification
	Status domain.CertStatus `json:"status"`
}

// ProductView attaches the estimated linear-weight range for the product's
// diameter window.
type ProductView struct {
	domain.Product
	WeightMinKgPerM float64 `json:"weight_min_kg_per_m"`
	WeightMaxKgPerM float64 `json:"weight_max_kg_per_m"`
}

type RelationCounts struct {
	Certifications int   `json:"certifications"`
	Products       int   `json:"products"`
	Facilities     int   `json:"facilities"`
	NewsItems      int64 `json:"news_items,omitempty"`
}

type ManufacturerView struct {
	domain.Manufacturer
	Slug           string              `json:"slug"`
	CountryName    string              `json:"country_name"`
	Keywords       []string            `json:"keywords"`
	Certifications []CertificationView `json:"certifications"`
	Products       []ProductView       `json:"products"`
	Counts         RelationCounts      `json:"counts"`
}

func toManufacturerView(m domain.Manufacturer, now time.Time) ManufacturerView {
	certs := make([]CertificationView, len(m.Certifications))
	for i, c := range m.Certifications {
		certs[i] = CertificationView{Certification: c, Status: c.StatusAt(now)}
	}

	products := make([]ProductView, len(m.Products))
	for i, p := range m.Products {
		products[i] = ProductView{
			Product:         p,
			WeightMinKgPerM: domain.ChainWeightKgPerMeter(p.DiameterMin, p.Grade),
			WeightMaxKgPerM: domain.ChainWeightKgPerMeter(p.DiameterMax, p.Grade),
		}
	}

	return ManufacturerView{
		Manufacturer:   m,
		Slug:           m.Slug(),
		CountryName:    domain.CountryDisplayName(m.CountryCode),
		Keywords:       m.Keywords(),
		Certifications: certs,
		Products:       products,
		Counts: RelationCounts{
			Certifications: len(m.Certifications),
			Products:       len(m.Products),
			Facilities:     len(m.Facilities),
		},
	}
}
