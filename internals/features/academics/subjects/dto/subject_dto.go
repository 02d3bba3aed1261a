// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"unischedule_backend/internals/features/academics/subjects/model"
)

/* ========== CREATE ========== */

type CreateSubjectRequest struct {
	SubjectSemesterID uuid.UUID `json:"subject_semester_id" validate:"required"`

	SubjectName string `json:"subject_name" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required,max=50"`

	SubjectCredits     int    `json:"subject_credits" validate:"required,min=1,max=20"`
	SubjectNEPCategory string `json:"subject_nep_category" validate:"required,oneof=MAJOR MINOR AEC SEC VAC MDC PROJECT OE"`

	SubjectTheoryHours    int `json:"subject_theory_hours" validate:"omitempty,min=0"`
	SubjectPracticalHours int `json:"subject_practical_hours" validate:"omitempty,min=0"`
	SubjectTutorialHours  int `json:"subject_tutorial_hours" validate:"omitempty,min=0"`

	SubjectPrerequisites    []string `json:"subject_prerequisites" validate:"omitempty,dive,printascii"`
	SubjectLearningOutcomes []string `json:"subject_learning_outcomes" validate:"omitempty,dive"`
}

func (r CreateSubjectRequest) ToModel() (model.SubjectModel, error) {
	m := model.SubjectModel{
		SubjectSemesterID:     r.SubjectSemesterID,
		SubjectName:           r.SubjectName,
		SubjectCode:           r.SubjectCode,
		SubjectCredits:        r.SubjectCredits,
		SubjectNEPCategory:    r.SubjectNEPCategory,
		SubjectTheoryHours:    r.SubjectTheoryHours,
		SubjectPracticalHours: r.SubjectPracticalHours,
		SubjectTutorialHours:  r.SubjectTutorialHours,
		SubjectPrerequisites:  pq.StringArray(r.SubjectPrerequisites),
	}
	if err := setJSONFromStrings(&m.SubjectLearningOutcomes, r.SubjectLearningOutcomes); err != nil {
		return m, err
	}
	return m, nil
}

/* ========== UPDATE ========== */

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=50"`

	SubjectCredits     *int    `json:"subject_credits" validate:"omitempty,min=1,max=20"`
	SubjectNEPCategory *string `json:"subject_nep_category" validate:"omitempty,oneof=MAJOR MINOR AEC SEC VAC MDC PROJECT OE"`

	SubjectTheoryHours    *int `json:"subject_theory_hours" validate:"omitempty,min=0"`
	SubjectPracticalHours *int `json:"subject_practical_hours" validate:"omitempty,min=0"`
	SubjectTutorialHours  *int `json:"subject_tutorial_hours" validate:"omitempty,min=0"`

	SubjectPrerequisites    *[]string `json:"subject_prerequisites" validate:"omitempty,dive,printascii"`
	SubjectLearningOutcomes *[]string `json:"subject_learning_outcomes" validate:"omitempty,dive"`
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) error {
	if r.SubjectName != nil {
		m.SubjectName = *r.SubjectName
	}
	if r.SubjectCode != nil {
		m.SubjectCode = *r.SubjectCode
	}
	if r.SubjectCredits != nil {
		m.SubjectCredits = *r.SubjectCredits
	}
	if r.SubjectNEPCategory != nil {
		m.SubjectNEPCategory = *r.SubjectNEPCategory
	}
	if r.SubjectTheoryHours != nil {
		m.SubjectTheoryHours = *r.SubjectTheoryHours
	}
	if r.SubjectPracticalHours != nil {
		m.SubjectPracticalHours = *r.SubjectPracticalHours
	}
	if r.SubjectTutorialHours != nil {
		m.SubjectTutorialHours = *r.SubjectTutorialHours
	}
	if r.SubjectPrerequisites != nil {
		m.SubjectPrerequisites = pq.StringArray(*r.SubjectPrerequisites)
	}
	if r.SubjectLearningOutcomes != nil {
		if err := setJSONFromStrings(&m.SubjectLearningOutcomes, *r.SubjectLearningOutcomes); err != nil {
			return err
		}
	}
	return nil
}

func setJSONFromStrings(dst *datatypes.JSON, src []string) error {
	if src == nil {
		return nil
	}
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	*dst = datatypes.JSON(b)
	return nil
}

/* ========== ASSIGNMENTS ========== */

type CreateAssignmentRequest struct {
	AssignmentSubjectID    uuid.UUID `json:"assignment_subject_id" validate:"required"`
	AssignmentTeacherID    uuid.UUID `json:"assignment_teacher_id" validate:"required"`
	AssignmentHoursPerWeek int       `json:"assignment_hours_per_week" validate:"required,min=1,max=40"`
}

func (r CreateAssignmentRequest) ToModel() model.SubjectTeacherAssignmentModel {
	return model.SubjectTeacherAssignmentModel{
		AssignmentSubjectID:    r.AssignmentSubjectID,
		AssignmentTeacherID:    r.AssignmentTeacherID,
		AssignmentHoursPerWeek: r.AssignmentHoursPerWeek,
	}
}

type UpdateAssignmentRequest struct {
	AssignmentHoursPerWeek *int `json:"assignment_hours_per_week" validate:"omitempty,min=1,max=40"`
}

func (r UpdateAssignmentRequest) Apply(m *model.SubjectTeacherAssignmentModel) {
	if r.AssignmentHoursPerWeek != nil {
		m.AssignmentHoursPerWeek = *r.AssignmentHoursPerWeek
	}
}
