package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertStatus is the lifecycle status derived from a certification's validity
// window. Only the derived value is reported to callers; the stored column is
// denormalized seed data and may lag behind (see DESIGN.md).
type CertStatus string

const (
	CertActive   CertStatus = "active"
	CertExpiring CertStatus = "expiring"
	CertExpired  CertStatus = "expired"
)

// expiryWarningWindow is how far ahead of expiry a certification is reported
// as expiring.
const expiryWarningWindow = 90 * 24 * time.Hour

// CertificationStatusAt classifies a validity end date against a reference
// time. An end date equal to now is already expired.
func CertificationStatusAt(validTo, now time.Time) CertStatus {
	if !validTo.After(now) {
		return CertExpired
	}
	if validTo.After(now.Add(expiryWarningWindow)) {
		return CertActive
	}
	return CertExpiring
}

type Certification struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	ManufacturerID string     `json:"manufacturer_id" gorm:"size:36;index"`
	ClassBody      string     `json:"class_body" gorm:"size:8;index" validate:"required"`
	CertCode       string     `json:"cert_code" gorm:"uniqueIndex;size:64" validate:"required"`
	Scope          string     `json:"scope,omitempty"`
	ValidFrom      time.Time  `json:"valid_from"`
	ValidTo        time.Time  `json:"valid_to"`
	Status         CertStatus `json:"-" gorm:"size:16"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Certification) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// StatusAt derives the lifecycle status at the given reference time.
func (c *Certification) StatusAt(now time.Time) CertStatus {
	return CertificationStatusAt(c.ValidTo, now)
}
