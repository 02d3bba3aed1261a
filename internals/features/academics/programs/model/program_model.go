// file: internals/features/academics/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramModel: a degree program (B.Ed., FYUP, ...). Program code is unique
// across the whole store, not per institution.
type ProgramModel struct {
	ProgramID            uuid.UUID `json:"program_id" gorm:"type:uuid;primaryKey;column:program_id;default:gen_random_uuid()"`
	ProgramInstitutionID uuid.UUID `json:"program_institution_id" gorm:"type:uuid;not null;index;column:program_institution_id"`

	ProgramName string `json:"program_name" gorm:"type:text;not null;column:program_name"`
	ProgramCode string `json:"program_code" gorm:"type:varchar(50);not null;uniqueIndex:uq_programs_code,where:program_deleted_at IS NULL;column:program_code"`
	ProgramType string `json:"program_type" gorm:"type:varchar(20);not null;default:'FYUP';column:program_type"`

	ProgramDurationSemesters int `json:"program_duration_semesters" gorm:"not null;column:program_duration_semesters"`
	ProgramTotalCredits      int `json:"program_total_credits" gorm:"not null;column:program_total_credits"`

	// NEP sub-targets; 0 means "use the category band from nep_categories"
	ProgramMajorCredits int `json:"program_major_credits" gorm:"not null;default:0;column:program_major_credits"`
	ProgramMDCCredits   int `json:"program_mdc_credits" gorm:"not null;default:0;column:program_mdc_credits"`

	ProgramCreatedAt time.Time      `json:"program_created_at" gorm:"column:program_created_at;autoCreateTime"`
	ProgramUpdatedAt time.Time      `json:"program_updated_at" gorm:"column:program_updated_at;autoUpdateTime"`
	ProgramDeletedAt gorm.DeletedAt `json:"program_deleted_at,omitempty" gorm:"column:program_deleted_at;index"`
}

func (ProgramModel) TableName() string { return "programs" }
