// file: internals/constants/nep_constants.go
package constants

// NEP 2020 category codes.
const (
	NEPMajor   = "MAJOR"
	NEPMinor   = "MINOR"
	NEPAEC     = "AEC"
	NEPSEC     = "SEC"
	NEPVAC     = "VAC"
	NEPMDC     = "MDC"
	NEPProject = "PROJECT"
	NEPOE      = "OE"
)

// NEPCategorySpec is the seed band for one category. Max = 0 means unbounded.
type NEPCategorySpec struct {
	Code        string
	Name        string
	MinCredits  int
	MaxCredits  int
	IsMandatory bool
}

// NEPCategorySeeds carries the NEP 2020 credit distribution for a full
// program. Open Electives carry no mandatory band.
var NEPCategorySeeds = []NEPCategorySpec{
	{Code: NEPMajor, Name: "Major discipline courses", MinCredits: 80, MaxCredits: 0, IsMandatory: true},
	{Code: NEPMinor, Name: "Minor / optional courses", MinCredits: 40, MaxCredits: 0, IsMandatory: true},
	{Code: NEPAEC, Name: "Ability Enhancement Courses", MinCredits: 8, MaxCredits: 0, IsMandatory: true},
	{Code: NEPSEC, Name: "Skill Enhancement Courses", MinCredits: 12, MaxCredits: 0, IsMandatory: true},
	{Code: NEPVAC, Name: "Value Added Courses", MinCredits: 4, MaxCredits: 0, IsMandatory: true},
	{Code: NEPMDC, Name: "Multidisciplinary Courses", MinCredits: 16, MaxCredits: 0, IsMandatory: true},
	{Code: NEPProject, Name: "Research / project work", MinCredits: 8, MaxCredits: 0, IsMandatory: true},
	{Code: NEPOE, Name: "Open Electives", MinCredits: 0, MaxCredits: 0, IsMandatory: false},
}

// IsNEPCategory reports whether code is part of the fixed vocabulary.
func IsNEPCategory(code string) bool {
	for _, s := range NEPCategorySeeds {
		if s.Code == code {
			return true
		}
	}
	return false
}

// Per-semester credit load recommended by the NEP guidelines.
const (
	SemesterMinCredits = 18
	SemesterMaxCredits = 22
)
