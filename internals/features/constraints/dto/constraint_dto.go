// file: internals/features/constraints/dto/constraint_dto.go
package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"unischedule_backend/internals/features/constraints/model"
)

type CreateConstraintRequest struct {
	ConstraintType     string     `json:"constraint_type" validate:"required,max=50"`
	ConstraintEntityID *uuid.UUID `json:"constraint_entity_id" validate:"omitempty"`

	ConstraintDescription string `json:"constraint_description" validate:"required"`
	ConstraintPriority    int    `json:"constraint_priority" validate:"omitempty,min=1,max=10"`
	ConstraintIsHard      bool   `json:"constraint_is_hard" validate:"omitempty"`

	ConstraintMetadata map[string]any `json:"constraint_metadata" validate:"omitempty"`
}

func (r CreateConstraintRequest) ToModel() (model.ConstraintModel, error) {
	m := model.ConstraintModel{
		ConstraintType:        r.ConstraintType,
		ConstraintEntityID:    r.ConstraintEntityID,
		ConstraintDescription: r.ConstraintDescription,
		ConstraintPriority:    5,
		ConstraintIsHard:      r.ConstraintIsHard,
	}
	if r.ConstraintPriority > 0 {
		m.ConstraintPriority = r.ConstraintPriority
	}
	if r.ConstraintMetadata != nil {
		b, err := json.Marshal(r.ConstraintMetadata)
		if err != nil {
			return m, err
		}
		m.ConstraintMetadata = datatypes.JSON(b)
	}
	return m, nil
}
