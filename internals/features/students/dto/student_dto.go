// file: internals/features/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"

	"unischedule_backend/internals/features/students/model"
)

/* ========== CREATE ========== */

type CreateStudentRequest struct {
	StudentProgramID uuid.UUID `json:"student_program_id" validate:"required"`

	StudentNumber string `json:"student_number" validate:"required,max=50"`
	StudentName   string `json:"student_name" validate:"required"`
	StudentEmail  string `json:"student_email" validate:"required,email"`

	StudentSemester        int `json:"student_semester" validate:"omitempty,min=1"`
	StudentEnrolledCredits int `json:"student_enrolled_credits" validate:"omitempty,min=0"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	m := model.StudentModel{
		StudentProgramID:       r.StudentProgramID,
		StudentNumber:          r.StudentNumber,
		StudentName:            r.StudentName,
		StudentEmail:           r.StudentEmail,
		StudentSemester:        1,
		StudentEnrolledCredits: r.StudentEnrolledCredits,
	}
	if r.StudentSemester > 0 {
		m.StudentSemester = r.StudentSemester
	}
	return m
}

/* ========== UPDATE ========== */

type UpdateStudentRequest struct {
	StudentName            *string `json:"student_name" validate:"omitempty"`
	StudentEmail           *string `json:"student_email" validate:"omitempty,email"`
	StudentSemester        *int    `json:"student_semester" validate:"omitempty,min=1"`
	StudentEnrolledCredits *int    `json:"student_enrolled_credits" validate:"omitempty,min=0"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = *r.StudentEmail
	}
	if r.StudentSemester != nil {
		m.StudentSemester = *r.StudentSemester
	}
	if r.StudentEnrolledCredits != nil {
		m.StudentEnrolledCredits = *r.StudentEnrolledCredits
	}
}
