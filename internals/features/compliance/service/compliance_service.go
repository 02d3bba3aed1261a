// file: internals/features/compliance/service/compliance_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	"unischedule_backend/internals/features/compliance/model"
)

const (
	StatusCompliant    = "COMPLIANT"
	StatusNonCompliant = "NON_COMPLIANT"
)

/* ============================ REPORT SHAPES ============================ */

type CategoryStatus struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	MinCredits   int    `json:"min_credits"`
	MaxCredits   int    `json:"max_credits"` // 0 = unbounded
	TotalCredits int    `json:"total_credits"`
	Status       string `json:"status"`
}

type SemesterLoad struct {
	SemesterNumber int    `json:"semester_number"`
	TotalCredits   int    `json:"total_credits"`
	MinCredits     int    `json:"min_credits"`
	MaxCredits     int    `json:"max_credits"`
	Status         string `json:"status"`
}

type Report struct {
	ProgramID     uuid.UUID        `json:"program_id"`
	Overall       string           `json:"overall_status"`
	Categories    []CategoryStatus `json:"categories"`
	SemesterLoads []SemesterLoad   `json:"semester_loads"`
}

/* ============================ PURE CORE ============================ */

// CategoryCompliance evaluates one category band against the accumulated
// credits. Optional categories are always COMPLIANT: they carry no band.
func CategoryCompliance(spec model.NEPCategoryModel, total int) string {
	if !spec.NEPCategoryIsMandatory {
		return StatusCompliant
	}
	if total < spec.NEPCategoryMinCredits {
		return StatusNonCompliant
	}
	if spec.NEPCategoryMaxCredits > 0 && total > spec.NEPCategoryMaxCredits {
		return StatusNonCompliant
	}
	return StatusCompliant
}

// SemesterLoadCompliance applies the per-semester 18..22 credit band.
func SemesterLoadCompliance(total int) string {
	if total < constants.SemesterMinCredits || total > constants.SemesterMaxCredits {
		return StatusNonCompliant
	}
	return StatusCompliant
}

// BuildReport assembles the full program report from already-aggregated
// inputs. Pure, so the boundary cases are unit-testable without a DB.
// creditsByCategory keys are NEP codes; creditsBySemester keys are semester
// numbers.
func BuildReport(
	programID uuid.UUID,
	specs []model.NEPCategoryModel,
	creditsByCategory map[string]int,
	creditsBySemester map[int]int,
	semesterNumbers []int,
) Report {
	report := Report{ProgramID: programID, Overall: StatusCompliant}

	for _, spec := range specs {
		total := creditsByCategory[spec.NEPCategoryCode]
		status := CategoryCompliance(spec, total)
		if status == StatusNonCompliant {
			report.Overall = StatusNonCompliant
		}
		report.Categories = append(report.Categories, CategoryStatus{
			Code:         spec.NEPCategoryCode,
			Name:         spec.NEPCategoryName,
			MinCredits:   spec.NEPCategoryMinCredits,
			MaxCredits:   spec.NEPCategoryMaxCredits,
			TotalCredits: total,
			Status:       status,
		})
	}

	for _, n := range semesterNumbers {
		total := creditsBySemester[n]
		status := SemesterLoadCompliance(total)
		if status == StatusNonCompliant {
			report.Overall = StatusNonCompliant
		}
		report.SemesterLoads = append(report.SemesterLoads, SemesterLoad{
			SemesterNumber: n,
			TotalCredits:   total,
			MinCredits:     constants.SemesterMinCredits,
			MaxCredits:     constants.SemesterMaxCredits,
			Status:         status,
		})
	}
	return report
}

/* ============================ DB AGGREGATION ============================ */

// CreditsByCategory sums subject credits per NEP category across every
// semester of the program.
func CreditsByCategory(ctx context.Context, db *gorm.DB, programID uuid.UUID) (map[string]int, error) {
	type row struct {
		Category string
		Total    int
	}
	var rows []row
	err := db.WithContext(ctx).
		Model(&subjectmodel.SubjectModel{}).
		Select("subject_nep_category AS category, COALESCE(SUM(subject_credits), 0) AS total").
		Joins("JOIN semesters ON semesters.semester_id = subjects.subject_semester_id AND semesters.semester_deleted_at IS NULL").
		Where("semesters.semester_program_id = ?", programID).
		Group("subject_nep_category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Total
	}
	return out, nil
}

// creditsBySemester sums subject credits per semester number of the program.
func creditsBySemester(ctx context.Context, db *gorm.DB, programID uuid.UUID) (map[int]int, []int, error) {
	type row struct {
		Number int
		Total  int
	}
	var rows []row
	err := db.WithContext(ctx).
		Model(&subjectmodel.SubjectModel{}).
		Select("semesters.semester_number AS number, COALESCE(SUM(subject_credits), 0) AS total").
		Joins("JOIN semesters ON semesters.semester_id = subjects.subject_semester_id AND semesters.semester_deleted_at IS NULL").
		Where("semesters.semester_program_id = ?", programID).
		Group("semesters.semester_number").
		Order("semesters.semester_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}
	totals := make(map[int]int, len(rows))
	numbers := make([]int, 0, len(rows))
	for _, r := range rows {
		totals[r.Number] = r.Total
		numbers = append(numbers, r.Number)
	}
	return totals, numbers, nil
}

// ComplianceReport loads the category vocabulary and the program's credit
// aggregates, then delegates to BuildReport. Read-only.
func ComplianceReport(ctx context.Context, db *gorm.DB, programID uuid.UUID) (Report, error) {
	var specs []model.NEPCategoryModel
	if err := db.WithContext(ctx).
		Order("nep_category_code ASC").
		Find(&specs).Error; err != nil {
		return Report{}, err
	}

	byCategory, err := CreditsByCategory(ctx, db, programID)
	if err != nil {
		return Report{}, err
	}
	bySemester, numbers, err := creditsBySemester(ctx, db, programID)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(programID, specs, byCategory, bySemester, numbers), nil
}
