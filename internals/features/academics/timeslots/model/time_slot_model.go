// file: internals/features/academics/timeslots/model/time_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeSlotModel: one teachable window of an institution's week. Day is 0..6
// with 0 = Monday; times are "HH:MM" strings on a time column. Unique per
// (institution, day, start, end); start < end is enforced at the DTO boundary.
type TimeSlotModel struct {
	TimeSlotID            uuid.UUID `json:"time_slot_id" gorm:"type:uuid;primaryKey;column:time_slot_id;default:gen_random_uuid()"`
	TimeSlotInstitutionID uuid.UUID `json:"time_slot_institution_id" gorm:"type:uuid;not null;uniqueIndex:uq_time_slots_inst_day_window,where:time_slot_deleted_at IS NULL;column:time_slot_institution_id"`

	TimeSlotDayOfWeek int    `json:"time_slot_day_of_week" gorm:"type:smallint;not null;uniqueIndex:uq_time_slots_inst_day_window;column:time_slot_day_of_week"`
	TimeSlotStartTime string `json:"time_slot_start_time" gorm:"type:time;not null;uniqueIndex:uq_time_slots_inst_day_window;column:time_slot_start_time"`
	TimeSlotEndTime   string `json:"time_slot_end_time" gorm:"type:time;not null;uniqueIndex:uq_time_slots_inst_day_window;column:time_slot_end_time"`

	TimeSlotSlotType string `json:"time_slot_slot_type" gorm:"type:varchar(20);not null;default:'theory';column:time_slot_slot_type"`

	TimeSlotCreatedAt time.Time      `json:"time_slot_created_at" gorm:"column:time_slot_created_at;autoCreateTime"`
	TimeSlotUpdatedAt time.Time      `json:"time_slot_updated_at" gorm:"column:time_slot_updated_at;autoUpdateTime"`
	TimeSlotDeletedAt gorm.DeletedAt `json:"time_slot_deleted_at,omitempty" gorm:"column:time_slot_deleted_at;index"`
}

func (TimeSlotModel) TableName() string { return "time_slots" }
