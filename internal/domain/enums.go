package domain

// ChainGrade is the strength classification of chain material.
type ChainGrade string

const (
	GradeU2 ChainGrade = "U2"
	GradeU3 ChainGrade = "U3"
	GradeR3 ChainGrade = "R3"
	GradeR4 ChainGrade = "R4"
	GradeR5 ChainGrade = "R5"
)

// ValidGrades returns all grades in increasing load-capacity order.
func ValidGrades() []ChainGrade {
	return []ChainGrade{GradeU2, GradeU3, GradeR3, GradeR4, GradeR5}
}

func ParseGrade(s string) (ChainGrade, bool) {
	for _, g := range ValidGrades() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// ClassSocieties maps classification-society codes to their full names.
var ClassSocieties = map[string]string{
	"LR":   "Lloyd's Register",
	"ABS":  "American Bureau of Shipping",
	"DNV":  "DNV GL",
	"RINA": "RINA",
	"CCS":  "China Classification Society",
	"IRS":  "Indian Register of Shipping",
	"RMRS": "Russian Maritime Register of Shipping",
}

func IsClassSociety(code string) bool {
	_, ok := ClassSocieties[code]
	return ok
}

type ProductCategory string

const (
	CategoryStud           ProductCategory = "stud"
	CategoryStudless       ProductCategory = "studless"
	CategoryAnchorFittings ProductCategory = "anchor_fittings"
)

func ValidCategories() []ProductCategory {
	return []ProductCategory{CategoryStud, CategoryStudless, CategoryAnchorFittings}
}

func ParseCategory(s string) (ProductCategory, bool) {
	for _, c := range ValidCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type SurfaceTreatment string

const (
	TreatmentBitumen    SurfaceTreatment = "bitumen"
	TreatmentGalvanized SurfaceTreatment = "galvanized"
	TreatmentPainted    SurfaceTreatment = "painted"
	TreatmentBare       SurfaceTreatment = "bare"
)

func ValidTreatments() []SurfaceTreatment {
	return []SurfaceTreatment{TreatmentBitumen, TreatmentGalvanized, TreatmentPainted, TreatmentBare}
}

func IsTreatment(s string) bool {
	for _, t := range ValidTreatments() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// countryNames is a partial, open-ended lookup of ISO alpha-2 codes.
var countryNames = map[string]string{
	"CN": "China",
	"US": "United States",
	"DE": "Germany",
	"JP": "Japan",
	"KR": "South Korea",
	"IT": "Italy",
	"NL": "Netherlands",
	"GB": "United Kingdom",
	"FR": "France",
	"ES": "Spain",
	"IN": "India",
	"BR": "Brazil",
	"RU": "Russia",
	"AU": "Australia",
	"CA": "Canada",
	"SE": "Sweden",
}

// CountryName resolves an ISO alpha-2 code. The second return reports whether
// the code is in the table.
func CountryName(code string) (string, bool) {
	name, ok := countryNames[code]
	return name, ok
}

// CountryDisplayName is the display-layer variant: unknown codes degrade to
// "Unknown" instead of failing.
func CountryDisplayName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return "Unknown"
}
