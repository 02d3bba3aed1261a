// file: internals/features/academics/rooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClassroomModel: physical room of one institution, name unique per
// institution. Room type is one of the constants.RoomType* values.
type ClassroomModel struct {
	ClassroomID            uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`
	ClassroomInstitutionID uuid.UUID `json:"classroom_institution_id" gorm:"type:uuid;not null;uniqueIndex:uq_classrooms_inst_name,where:classroom_deleted_at IS NULL;column:classroom_institution_id"`

	ClassroomName     string `json:"classroom_name" gorm:"type:text;not null;uniqueIndex:uq_classrooms_inst_name;column:classroom_name"`
	ClassroomBuilding string `json:"classroom_building" gorm:"type:text;column:classroom_building"`
	ClassroomCapacity int    `json:"classroom_capacity" gorm:"not null;column:classroom_capacity"`
	ClassroomRoomType string `json:"classroom_room_type" gorm:"type:varchar(20);not null;default:'lecture';column:classroom_room_type"`

	ClassroomFacilities  pq.StringArray `json:"classroom_facilities" gorm:"type:text[];column:classroom_facilities"`
	ClassroomIsAvailable bool           `json:"classroom_is_available" gorm:"not null;default:true;column:classroom_is_available"`

	ClassroomCreatedAt time.Time      `json:"classroom_created_at" gorm:"column:classroom_created_at;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `json:"classroom_updated_at" gorm:"column:classroom_updated_at;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `json:"classroom_deleted_at,omitempty" gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string { return "classrooms" }
