// file: internals/features/academics/teachers/dto/teacher_dto.go
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"unischedule_backend/internals/features/academics/teachers/model"
)

/* ========== CREATE ========== */

type CreateTeacherRequest struct {
	TeacherInstitutionID uuid.UUID `json:"teacher_institution_id" validate:"required"`

	TeacherName       string `json:"teacher_name" validate:"required"`
	TeacherEmail      string `json:"teacher_email" validate:"required,email"`
	TeacherEmployeeID string `json:"teacher_employee_id" validate:"required,max=50"`

	TeacherDepartment      string         `json:"teacher_department" validate:"omitempty"`
	TeacherExpertise       []string       `json:"teacher_expertise" validate:"omitempty,dive,printascii"`
	TeacherMaxHoursPerWeek int            `json:"teacher_max_hours_per_week" validate:"omitempty,min=1,max=60"`
	TeacherAvailability    map[string]any `json:"teacher_availability" validate:"omitempty"`
}

func (r CreateTeacherRequest) ToModel() (model.TeacherModel, error) {
	m := model.TeacherModel{
		TeacherInstitutionID:   r.TeacherInstitutionID,
		TeacherName:            r.TeacherName,
		TeacherEmail:           r.TeacherEmail,
		TeacherEmployeeID:      r.TeacherEmployeeID,
		TeacherDepartment:      r.TeacherDepartment,
		TeacherExpertise:       pq.StringArray(r.TeacherExpertise),
		TeacherMaxHoursPerWeek: 20,
	}
	if r.TeacherMaxHoursPerWeek > 0 {
		m.TeacherMaxHoursPerWeek = r.TeacherMaxHoursPerWeek
	}
	if r.TeacherAvailability != nil {
		b, err := json.Marshal(r.TeacherAvailability)
		if err != nil {
			return m, err
		}
		m.TeacherAvailability = datatypes.JSON(b)
	}
	return m, nil
}

/* ========== UPDATE ========== */

type UpdateTeacherRequest struct {
	TeacherName       *string `json:"teacher_name" validate:"omitempty"`
	TeacherEmail      *string `json:"teacher_email" validate:"omitempty,email"`
	TeacherEmployeeID *string `json:"teacher_employee_id" validate:"omitempty,max=50"`

	TeacherDepartment      *string        `json:"teacher_department" validate:"omitempty"`
	TeacherExpertise       *[]string      `json:"teacher_expertise" validate:"omitempty,dive,printascii"`
	TeacherMaxHoursPerWeek *int           `json:"teacher_max_hours_per_week" validate:"omitempty,min=1,max=60"`
	TeacherAvailability    map[string]any `json:"teacher_availability" validate:"omitempty"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) error {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = *r.TeacherEmail
	}
	if r.TeacherEmployeeID != nil {
		m.TeacherEmployeeID = *r.TeacherEmployeeID
	}
	if r.TeacherDepartment != nil {
		m.TeacherDepartment = *r.TeacherDepartment
	}
	if r.TeacherExpertise != nil {
		m.TeacherExpertise = pq.StringArray(*r.TeacherExpertise)
	}
	if r.TeacherMaxHoursPerWeek != nil {
		m.TeacherMaxHoursPerWeek = *r.TeacherMaxHoursPerWeek
	}
	if r.TeacherAvailability != nil {
		b, err := json.Marshal(r.TeacherAvailability)
		if err != nil {
			return err
		}
		m.TeacherAvailability = datatypes.JSON(b)
	}
	return nil
}
