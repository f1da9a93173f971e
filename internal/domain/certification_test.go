package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCertificationStatusAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		validTo time.Time
		want    CertStatus
	}{
		{"one second in the past", now.Add(-time.Second), CertExpired},
		{"exactly now", now, CertExpired},
		{"one second ahead", now.Add(time.Second), CertExpiring},
		{"89 days ahead", now.Add(89 * 24 * time.Hour), CertExpiring},
		{"exactly 90 days ahead", now.Add(90 * 24 * time.Hour), CertExpiring},
		{"91 days ahead", now.Add(91 * 24 * time.Hour), CertActive},
		{"two years ahead", now.AddDate(2, 0, 0), CertActive},
		{"long expired", now.AddDate(-3, 0, 0), CertExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CertificationStatusAt(tt.validTo, now))
		})
	}
}

func TestCertification_StatusAt_IgnoresStoredColumn(t *testing.T) {
	now := time.Now().UTC()
	cert := Certification{
		Status:  CertActive, // stale denormalized value
		ValidTo: now.Add(-24 * time.Hour),
	}
	assert.Equal(t, CertExpired, cert.StatusAt(now))
}
