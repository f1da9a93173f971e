package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BidStatus string

const (
	BidOpen   BidStatus = "open"
	BidClosed BidStatus = "closed"
)

// BidSpecification is the structured requirement attached to a bid project.
type BidSpecification struct {
	Grade     string `json:"grade,omitempty"`
	Diameter  string `json:"diameter,omitempty"`
	Length    string `json:"length,omitempty"`
	Treatment string `json:"treatment,omitempty"`
}

// BidProject is a standalone procurement listing; it has no relation to
// Manufacturer.
type BidProject struct {
	ID             string                                   `json:"id" gorm:"primaryKey;size:36"`
	Title          string                                   `json:"title" validate:"required"`
	Location       string                                   `json:"location,omitempty"`
	Description    string                                   `json:"description,omitempty"`
	Specifications datatypes.JSONType[BidSpecification]     `json:"specifications"`
	Quantity       int                                      `json:"quantity"`
	Unit           string                                   `json:"unit,omitempty"`
	Deadline       time.Time                                `json:"deadline"`
	Status         BidStatus                                `json:"status" gorm:"size:16;index;default:open"`
	Source         string                                   `json:"source,omitempty"`
	CreatedAt      time.Time                                `json:"created_at"`
	UpdatedAt      time.Time                                `json:"updated_at"`
}

func (b *BidProject) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
