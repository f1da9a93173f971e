package domain

import "math"

// steelDensity is g/cm³; with a diameter in millimeters the rod-volume formula
// below comes out in kg per meter of chain.
const steelDensity = 7.85

var gradeMultipliers = map[ChainGrade]float64{
	GradeU2: 1.0,
	GradeU3: 1.1,
	GradeR3: 1.2,
	GradeR4: 1.3,
	GradeR5: 1.4,
}

// ChainWeightKgPerMeter estimates the linear weight of a chain with the given
// link diameter (mm) and grade. The link cross-section is modeled as a solid
// circular steel rod scaled by a grade factor, so this is a rough catalog
// estimate, not an engineering computation. Unrecognized grades fall back to
// the U2 factor.
func ChainWeightKgPerMeter(diameterMM float64, grade ChainGrade) float64 {
	base := math.Pi * math.Pow(diameterMM/2, 2) * steelDensity / 1000
	mult, ok := gradeMultipliers[grade]
	if !ok {
		mult = 1.0
	}
	return base * mult
}
