// file: internals/features/compliance/service/compliance_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unischedule_backend/internals/features/compliance/model"
)

func mkSpec(code string, min, max int, mandatory bool) model.NEPCategoryModel {
	return model.NEPCategoryModel{
		NEPCategoryCode:        code,
		NEPCategoryName:        code + " courses",
		NEPCategoryMinCredits:  min,
		NEPCategoryMaxCredits:  max,
		NEPCategoryIsMandatory: mandatory,
	}
}

func TestCategoryComplianceBoundary(t *testing.T) {
	major := mkSpec("MAJOR", 80, 0, true)

	assert.Equal(t, StatusCompliant, CategoryCompliance(major, 80), "exactly the minimum is compliant")
	assert.Equal(t, StatusNonCompliant, CategoryCompliance(major, 79), "one below the minimum is not")
	assert.Equal(t, StatusCompliant, CategoryCompliance(major, 200), "max 0 means unbounded")
}

func TestCategoryComplianceUpperBound(t *testing.T) {
	banded := mkSpec("VAC", 4, 8, true)

	assert.Equal(t, StatusCompliant, CategoryCompliance(banded, 8))
	assert.Equal(t, StatusNonCompliant, CategoryCompliance(banded, 9))
}

func TestCategoryComplianceOptional(t *testing.T) {
	oe := mkSpec("OE", 0, 0, false)
	assert.Equal(t, StatusCompliant, CategoryCompliance(oe, 0), "optional categories carry no band")
}

func TestSemesterLoadCompliance(t *testing.T) {
	assert.Equal(t, StatusCompliant, SemesterLoadCompliance(18))
	assert.Equal(t, StatusCompliant, SemesterLoadCompliance(22))
	assert.Equal(t, StatusNonCompliant, SemesterLoadCompliance(17))
	assert.Equal(t, StatusNonCompliant, SemesterLoadCompliance(23))
}

func TestBuildReportOverallStatus(t *testing.T) {
	programID := uuid.New()
	specs := []model.NEPCategoryModel{
		mkSpec("MAJOR", 80, 0, true),
		mkSpec("AEC", 8, 0, true),
		mkSpec("OE", 0, 0, false),
	}

	report := BuildReport(programID, specs,
		map[string]int{"MAJOR": 84, "AEC": 8},
		map[int]int{1: 20, 2: 21},
		[]int{1, 2},
	)
	assert.Equal(t, StatusCompliant, report.Overall)
	require.Len(t, report.Categories, 3)
	require.Len(t, report.SemesterLoads, 2)

	// One category dipping below its band flips the whole report.
	report = BuildReport(programID, specs,
		map[string]int{"MAJOR": 84, "AEC": 7},
		map[int]int{1: 20},
		[]int{1},
	)
	assert.Equal(t, StatusNonCompliant, report.Overall)
	for _, cat := range report.Categories {
		if cat.Code == "AEC" {
			assert.Equal(t, StatusNonCompliant, cat.Status)
			assert.Equal(t, 7, cat.TotalCredits)
		}
	}
}

func TestBuildReportFlagsOverloadedSemester(t *testing.T) {
	report := BuildReport(uuid.New(),
		[]model.NEPCategoryModel{mkSpec("MAJOR", 0, 0, true)},
		map[string]int{},
		map[int]int{1: 25},
		[]int{1},
	)
	assert.Equal(t, StatusNonCompliant, report.Overall)
	require.Len(t, report.SemesterLoads, 1)
	assert.Equal(t, StatusNonCompliant, report.SemesterLoads[0].Status)
	assert.Equal(t, 25, report.SemesterLoads[0].TotalCredits)
}
