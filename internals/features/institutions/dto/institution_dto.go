// file: internals/features/institutions/dto/institution_dto.go
package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"unischedule_backend/internals/features/institutions/model"
)

/* ========== CREATE ========== */

type CreateInstitutionRequest struct {
	InstitutionName string `json:"institution_name" validate:"required"`
	InstitutionCode string `json:"institution_code" validate:"required,max=50"`

	// open object: unknown keys accepted, values must be JSON primitives/arrays
	InstitutionContactInfo map[string]any `json:"institution_contact_info" validate:"omitempty"`
}

func (r CreateInstitutionRequest) ToModel() (model.InstitutionModel, error) {
	m := model.InstitutionModel{
		InstitutionName: r.InstitutionName,
		InstitutionCode: r.InstitutionCode,
	}
	if err := setJSONFromMap(&m.InstitutionContactInfo, r.InstitutionContactInfo); err != nil {
		return m, err
	}
	return m, nil
}

/* ========== UPDATE ========== */

type UpdateInstitutionRequest struct {
	InstitutionName        *string        `json:"institution_name" validate:"omitempty"`
	InstitutionCode        *string        `json:"institution_code" validate:"omitempty,max=50"`
	InstitutionContactInfo map[string]any `json:"institution_contact_info" validate:"omitempty"`
}

func (r UpdateInstitutionRequest) Apply(m *model.InstitutionModel) error {
	if r.InstitutionName != nil {
		m.InstitutionName = *r.InstitutionName
	}
	if r.InstitutionCode != nil {
		m.InstitutionCode = *r.InstitutionCode
	}
	if r.InstitutionContactInfo != nil {
		if err := setJSONFromMap(&m.InstitutionContactInfo, r.InstitutionContactInfo); err != nil {
			return err
		}
	}
	return nil
}

func setJSONFromMap(dst *datatypes.JSON, src map[string]any) error {
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
