package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceCatalog describes an external data source for the (separate) crawler
// process. This service only stores and serves the configuration.
type SourceCatalog struct {
	ID                    string    `json:"id" gorm:"primaryKey;size:36"`
	Name                  string    `json:"name" gorm:"uniqueIndex" validate:"required"`
	URL                   string    `json:"url" validate:"required,url"`
	Type                  string    `json:"type,omitempty"`
	CrawlerType           string    `json:"crawler_type,omitempty"`
	RobotsStatus          string    `json:"robots_status,omitempty"`
	CrawlFrequencyMinutes int       `json:"crawl_frequency_minutes"`
	IsActive              bool      `json:"is_active" gorm:"index"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (s *SourceCatalog) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
