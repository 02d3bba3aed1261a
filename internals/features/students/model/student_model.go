// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: enrolled student of one program. The dashboard treats
// student number and email as globally unique, so the store does too.
type StudentModel struct {
	StudentID        uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`
	StudentProgramID uuid.UUID `json:"student_program_id" gorm:"type:uuid;not null;index;column:student_program_id"`

	StudentNumber string `json:"student_number" gorm:"type:varchar(50);not null;uniqueIndex:uq_students_number,where:student_deleted_at IS NULL;column:student_number"`
	StudentName   string `json:"student_name" gorm:"type:text;not null;column:student_name"`
	StudentEmail  string `json:"student_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_students_email,where:student_deleted_at IS NULL;column:student_email"`

	StudentSemester        int `json:"student_semester" gorm:"not null;default:1;column:student_semester"`
	StudentEnrolledCredits int `json:"student_enrolled_credits" gorm:"not null;default:0;column:student_enrolled_credits"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
