package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsStatus string

const (
	NewsActive   NewsStatus = "active"
	NewsInactive NewsStatus = "inactive"
)

// NewsItem is a news entry optionally tied to a manufacturer. Entity and
// category tags are stored as their own typed columns instead of one untyped
// blob so the category filter stays queryable.
type NewsItem struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	ManufacturerID *string    `json:"manufacturer_id,omitempty" gorm:"size:36;index"`
	SourceID       string     `json:"source_id,omitempty"`
	Publisher      string     `json:"publisher,omitempty"`
	Title          string     `json:"title" validate:"required"`
	PublishedAt    time.Time  `json:"published_at" gorm:"index"`
	Lang           string     `json:"lang" gorm:"size:8;default:en"`
	Summary        string     `json:"summary,omitempty"`
	URL            string     `json:"url" gorm:"index" validate:"required,url"`
	Status         NewsStatus `json:"status" gorm:"size:16;index;default:active"`
	Entities       []string   `json:"entities,omitempty" gorm:"serializer:json"`
	Categories     []string   `json:"categories,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Manufacturer *Manufacturer `json:"manufacturer,omitempty"`
}

func (n *NewsItem) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
