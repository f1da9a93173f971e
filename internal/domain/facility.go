package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Facility struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	ManufacturerID  string    `json:"manufacturer_id" gorm:"size:36;index"`
	Name            string    `json:"name" validate:"required"`
	Address         string    `json:"address,omitempty"`
	Longitude       float64   `json:"longitude"`
	Latitude        float64   `json:"latitude"`
	AnnualCapacity  int       `json:"annual_capacity" validate:"required,gt=0"`
	ProductionLines []string  `json:"production_lines,omitempty" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (f *Facility) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
