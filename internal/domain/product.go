package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID             string          `json:"id" gorm:"primaryKey;size:36"`
	ManufacturerID string          `json:"manufacturer_id" gorm:"size:36;index"`
	Category       ProductCategory `json:"category" gorm:"size:32" validate:"required"`
	Grade          ChainGrade      `json:"grade" gorm:"size:4;index" validate:"required"`
	DiameterMin    float64         `json:"diameter_min"`
	DiameterMax    float64         `json:"diameter_max"`
	Treatments     []string        `json:"treatments,omitempty" gorm:"serializer:json"`
	Standards      []string        `json:"standards,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
