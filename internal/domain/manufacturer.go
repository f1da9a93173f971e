package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "pending"
	ProfileVerified ProfileStatus = "verified"
	ProfileRejected ProfileStatus = "rejected"
)

type Manufacturer struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	LegalName      string        `json:"legal_name" gorm:"uniqueIndex;size:255" validate:"required"`
	Brand          string        `json:"brand,omitempty"`
	Aliases        []string      `json:"aliases,omitempty" gorm:"serializer:json"`
	CountryCode    string        `json:"country_code" gorm:"size:2;index" validate:"required,len=2"`
	Address        string        `json:"address,omitempty"`
	Longitude      float64       `json:"longitude"`
	Latitude       float64       `json:"latitude"`
	FoundedYear    *int          `json:"founded_year,omitempty"`
	SiteURL        string        `json:"site_url,omitempty"`
	PublicEmails   []string      `json:"public_emails,omitempty" gorm:"serializer:json"`
	Phones         []string      `json:"phones,omitempty" gorm:"serializer:json"`
	ProfileStatus  ProfileStatus `json:"profile_status" gorm:"size:16;index;default:pending"`
	LastVerifiedAt *time.Time    `json:"last_verified_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Certifications []Certification `json:"certifications,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Products       []Product       `json:"products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Facilities     []Facility      `json:"facilities,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	NewsItems      []NewsItem      `json:"news_items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (m *Manufacturer) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Slug is the manufacturer's URL-safe identifier.
func (m *Manufacturer) Slug() string {
	return Slug(m.LegalName, m.CountryCode)
}

// Keywords drives case-insensitive substring search over a manufacturer.
func (m *Manufacturer) Keywords() []string {
	return SearchKeywords(m.LegalName, m.Brand, m.Aliases, m.CountryCode)
}
