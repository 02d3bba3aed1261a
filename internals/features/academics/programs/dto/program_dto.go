// file: internals/features/academics/programs/dto/program_dto.go
package dto

import (
	"github.com/google/uuid"

	"unischedule_backend/internals/features/academics/programs/model"
)

/* ========== CREATE ========== */

type CreateProgramRequest struct {
	ProgramInstitutionID uuid.UUID `json:"program_institution_id" validate:"required"`

	ProgramName string `json:"program_name" validate:"required"`
	ProgramCode string `json:"program_code" validate:"required,max=50"`
	ProgramType string `json:"program_type" validate:"omitempty,oneof=B.Ed. M.Ed. FYUP ITEP"`

	ProgramDurationSemesters int `json:"program_duration_semesters" validate:"required,min=1,max=12"`
	ProgramTotalCredits      int `json:"program_total_credits" validate:"required,min=1"`

	ProgramMajorCredits int `json:"program_major_credits" validate:"omitempty,min=0"`
	ProgramMDCCredits   int `json:"program_mdc_credits" validate:"omitempty,min=0"`
}

func (r CreateProgramRequest) ToModel() model.ProgramModel {
	m := model.ProgramModel{
		ProgramInstitutionID:     r.ProgramInstitutionID,
		ProgramName:              r.ProgramName,
		ProgramCode:              r.ProgramCode,
		ProgramDurationSemesters: r.ProgramDurationSemesters,
		ProgramTotalCredits:      r.ProgramTotalCredits,
		ProgramMajorCredits:      r.ProgramMajorCredits,
		ProgramMDCCredits:        r.ProgramMDCCredits,
	}
	if r.ProgramType != "" {
		m.ProgramType = r.ProgramType
	}
	return m
}

/* ========== UPDATE ========== */

type UpdateProgramRequest struct {
	ProgramName *string `json:"program_name" validate:"omitempty"`
	ProgramCode *string `json:"program_code" validate:"omitempty,max=50"`
	ProgramType *string `json:"program_type" validate:"omitempty,oneof=B.Ed. M.Ed. FYUP ITEP"`

	ProgramDurationSemesters *int `json:"program_duration_semesters" validate:"omitempty,min=1,max=12"`
	ProgramTotalCredits      *int `json:"program_total_credits" validate:"omitempty,min=1"`

	ProgramMajorCredits *int `json:"program_major_credits" validate:"omitempty,min=0"`
	ProgramMDCCredits   *int `json:"program_mdc_credits" validate:"omitempty,min=0"`
}

func (r UpdateProgramRequest) Apply(m *model.ProgramModel) {
	if r.ProgramName != nil {
		m.ProgramName = *r.ProgramName
	}
	if r.ProgramCode != nil {
		m.ProgramCode = *r.ProgramCode
	}
	if r.ProgramType != nil {
		m.ProgramType = *r.ProgramType
	}
	if r.ProgramDurationSemesters != nil {
		m.ProgramDurationSemesters = *r.ProgramDurationSemesters
	}
	if r.ProgramTotalCredits != nil {
		m.ProgramTotalCredits = *r.ProgramTotalCredits
	}
	if r.ProgramMajorCredits != nil {
		m.ProgramMajorCredits = *r.ProgramMajorCredits
	}
	if r.ProgramMDCCredits != nil {
		m.ProgramMDCCredits = *r.ProgramMDCCredits
	}
}

/* ========== SEMESTERS ========== */

type CreateSemesterRequest struct {
	SemesterNumber       int    `json:"semester_number" validate:"required,min=1"`
	SemesterAcademicYear string `json:"semester_academic_year" validate:"omitempty,max=20"`
}

func (r CreateSemesterRequest) ToModel(programID uuid.UUID) model.SemesterModel {
	return model.SemesterModel{
		SemesterProgramID:    programID,
		SemesterNumber:       r.SemesterNumber,
		SemesterAcademicYear: r.SemesterAcademicYear,
	}
}

type UpdateSemesterRequest struct {
	SemesterNumber       *int    `json:"semester_number" validate:"omitempty,min=1"`
	SemesterAcademicYear *string `json:"semester_academic_year" validate:"omitempty,max=20"`
}

func (r UpdateSemesterRequest) Apply(m *model.SemesterModel) {
	if r.SemesterNumber != nil {
		m.SemesterNumber = *r.SemesterNumber
	}
	if r.SemesterAcademicYear != nil {
		m.SemesterAcademicYear = *r.SemesterAcademicYear
	}
}
