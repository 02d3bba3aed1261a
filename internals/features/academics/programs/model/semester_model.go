// file: internals/features/academics/programs/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SemesterModel: numbered 1..program_duration_semesters, one row per
// (program, number).
type SemesterModel struct {
	SemesterID        uuid.UUID `json:"semester_id" gorm:"type:uuid;primaryKey;column:semester_id;default:gen_random_uuid()"`
	SemesterProgramID uuid.UUID `json:"semester_program_id" gorm:"type:uuid;not null;uniqueIndex:uq_semesters_program_number,where:semester_deleted_at IS NULL;column:semester_program_id"`

	SemesterNumber       int    `json:"semester_number" gorm:"not null;uniqueIndex:uq_semesters_program_number;column:semester_number"`
	SemesterAcademicYear string `json:"semester_academic_year" gorm:"type:varchar(20);column:semester_academic_year"`

	SemesterCreatedAt time.Time      `json:"semester_created_at" gorm:"column:semester_created_at;autoCreateTime"`
	SemesterUpdatedAt time.Time      `json:"semester_updated_at" gorm:"column:semester_updated_at;autoUpdateTime"`
	SemesterDeletedAt gorm.DeletedAt `json:"semester_deleted_at,omitempty" gorm:"column:semester_deleted_at;index"`
}

func (SemesterModel) TableName() string { return "semesters" }
