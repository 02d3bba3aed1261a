// file: internals/features/institutions/model/institution_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InstitutionModel is the root owner of programs, teachers, classrooms and
// time slots. Contact info is an open JSONB object (phone, address, website,
// whatever the dashboard sends) validated only for shape at the DTO boundary.
type InstitutionModel struct {
	InstitutionID   uuid.UUID      `json:"institution_id" gorm:"type:uuid;primaryKey;column:institution_id;default:gen_random_uuid()"`
	InstitutionName string         `json:"institution_name" gorm:"type:text;not null;column:institution_name"`
	InstitutionCode string         `json:"institution_code" gorm:"type:varchar(50);not null;uniqueIndex:uq_institutions_code,where:institution_deleted_at IS NULL;column:institution_code"`

	InstitutionContactInfo datatypes.JSON `json:"institution_contact_info" gorm:"type:jsonb;not null;default:'{}';column:institution_contact_info"`

	InstitutionCreatedAt time.Time      `json:"institution_created_at" gorm:"column:institution_created_at;autoCreateTime"`
	InstitutionUpdatedAt time.Time      `json:"institution_updated_at" gorm:"column:institution_updated_at;autoUpdateTime"`
	InstitutionDeletedAt gorm.DeletedAt `json:"institution_deleted_at,omitempty" gorm:"column:institution_deleted_at;index"`
}

func (InstitutionModel) TableName() string { return "institutions" }
