package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainWeight_IncreasesWithGrade(t *testing.T) {
	diameters := []float64{16, 50, 76, 122}

	for _, d := range diameters {
		grades := ValidGrades()
		for i := 1; i < len(grades); i++ {
			lower := ChainWeightKgPerMeter(d, grades[i-1])
			higher := ChainWeightKgPerMeter(d, grades[i])
			assert.Greater(t, higher, lower,
				"weight at d=%v should increase from %s to %s", d, grades[i-1], grades[i])
		}
	}
}

func TestChainWeight_ScalesWithDiameterSquared(t *testing.T) {
	for _, g := range ValidGrades() {
		base := ChainWeightKgPerMeter(20, g)
		doubled := ChainWeightKgPerMeter(40, g)
		assert.InDelta(t, 4*base, doubled, 1e-9)
	}
}

func TestChainWeight_UnknownGradeFallsBack(t *testing.T) {
	assert.Equal(t,
		ChainWeightKgPerMeter(30, GradeU2),
		ChainWeightKgPerMeter(30, ChainGrade("Z9")))
}

func TestChainWeight_KnownValue(t *testing.T) {
	// 76mm U3: π·38²·7.85/1000 × 1.1 ≈ 39.18 kg/m
	got := ChainWeightKgPerMeter(76, GradeU3)
	assert.InDelta(t, 39.18, got, 0.05)
}
