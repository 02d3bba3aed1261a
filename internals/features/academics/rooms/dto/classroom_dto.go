// file: internals/features/academics/rooms/dto/classroom_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"unischedule_backend/internals/features/academics/rooms/model"
)

/* ========== CREATE ========== */

type CreateClassroomRequest struct {
	ClassroomInstitutionID uuid.UUID `json:"classroom_institution_id" validate:"required"`

	ClassroomName     string `json:"classroom_name" validate:"required"`
	ClassroomBuilding string `json:"classroom_building" validate:"omitempty"`
	ClassroomCapacity int    `json:"classroom_capacity" validate:"required,min=1"`
	ClassroomRoomType string `json:"classroom_room_type" validate:"omitempty,oneof=lecture lab seminar"`

	ClassroomFacilities  []string `json:"classroom_facilities" validate:"omitempty,dive,printascii"`
	ClassroomIsAvailable *bool    `json:"classroom_is_available" validate:"omitempty"`
}

func (r CreateClassroomRequest) ToModel() model.ClassroomModel {
	m := model.ClassroomModel{
		ClassroomInstitutionID: r.ClassroomInstitutionID,
		ClassroomName:          r.ClassroomName,
		ClassroomBuilding:      r.ClassroomBuilding,
		ClassroomCapacity:      r.ClassroomCapacity,
		ClassroomRoomType:      "lecture",
		ClassroomFacilities:    pq.StringArray(r.ClassroomFacilities),
		ClassroomIsAvailable:   true,
	}
	if r.ClassroomRoomType != "" {
		m.ClassroomRoomType = r.ClassroomRoomType
	}
	if r.ClassroomIsAvailable != nil {
		m.ClassroomIsAvailable = *r.ClassroomIsAvailable
	}
	return m
}

/* ========== UPDATE ========== */

type UpdateClassroomRequest struct {
	ClassroomName     *string `json:"classroom_name" validate:"omitempty"`
	ClassroomBuilding *string `json:"classroom_building" validate:"omitempty"`
	ClassroomCapacity *int    `json:"classroom_capacity" validate:"omitempty,min=1"`
	ClassroomRoomType *string `json:"classroom_room_type" validate:"omitempty,oneof=lecture lab seminar"`

	ClassroomFacilities  *[]string `json:"classroom_facilities" validate:"omitempty,dive,printascii"`
	ClassroomIsAvailable *bool     `json:"classroom_is_available" validate:"omitempty"`
}

func (r UpdateClassroomRequest) Apply(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = *r.ClassroomName
	}
	if r.ClassroomBuilding != nil {
		m.ClassroomBuilding = *r.ClassroomBuilding
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = *r.ClassroomCapacity
	}
	if r.ClassroomRoomType != nil {
		m.ClassroomRoomType = *r.ClassroomRoomType
	}
	if r.ClassroomFacilities != nil {
		m.ClassroomFacilities = pq.StringArray(*r.ClassroomFacilities)
	}
	if r.ClassroomIsAvailable != nil {
		m.ClassroomIsAvailable = *r.ClassroomIsAvailable
	}
}
