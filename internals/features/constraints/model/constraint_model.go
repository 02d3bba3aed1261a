// file: internals/features/constraints/model/constraint_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConstraintModel: operator-declared scheduling preference or rule consumed
// by the generation engine. Metadata is an open JSONB object; entity id may
// point at a teacher, room or subject depending on constraint_type.
type ConstraintModel struct {
	ConstraintID uuid.UUID `json:"constraint_id" gorm:"type:uuid;primaryKey;column:constraint_id;default:gen_random_uuid()"`

	ConstraintType     string     `json:"constraint_type" gorm:"type:varchar(50);not null;index;column:constraint_type"`
	ConstraintEntityID *uuid.UUID `json:"constraint_entity_id,omitempty" gorm:"type:uuid;column:constraint_entity_id"`

	ConstraintDescription string `json:"constraint_description" gorm:"type:text;not null;column:constraint_description"`
	ConstraintPriority    int    `json:"constraint_priority" gorm:"not null;default:5;column:constraint_priority"`
	ConstraintIsHard      bool   `json:"constraint_is_hard" gorm:"not null;default:false;column:constraint_is_hard"`

	ConstraintMetadata datatypes.JSON `json:"constraint_metadata" gorm:"type:jsonb;not null;default:'{}';column:constraint_metadata"`

	ConstraintCreatedAt time.Time      `json:"constraint_created_at" gorm:"column:constraint_created_at;autoCreateTime"`
	ConstraintDeletedAt gorm.DeletedAt `json:"constraint_deleted_at,omitempty" gorm:"column:constraint_deleted_at;index"`
}

func (ConstraintModel) TableName() string { return "constraints" }
