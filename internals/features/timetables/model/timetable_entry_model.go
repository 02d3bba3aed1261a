// file: internals/features/timetables/model/timetable_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimetableEntryModel is one scheduled occurrence: subject + teacher +
// classroom for a day and window. Day/start/end are snapshotted from the
// chosen slot so validation and grid reads never need a join back to
// time_slots.
type TimetableEntryModel struct {
	EntryID          uuid.UUID `json:"entry_id" gorm:"type:uuid;primaryKey;column:entry_id;default:gen_random_uuid()"`
	EntryTimetableID uuid.UUID `json:"entry_timetable_id" gorm:"type:uuid;not null;index;column:entry_timetable_id"`

	EntrySubjectID   uuid.UUID `json:"entry_subject_id" gorm:"type:uuid;not null;index;column:entry_subject_id"`
	EntryTeacherID   uuid.UUID `json:"entry_teacher_id" gorm:"type:uuid;not null;index;column:entry_teacher_id"`
	EntryClassroomID uuid.UUID `json:"entry_classroom_id" gorm:"type:uuid;not null;index;column:entry_classroom_id"`
	EntryTimeSlotID  uuid.UUID `json:"entry_time_slot_id" gorm:"type:uuid;not null;column:entry_time_slot_id"`

	EntryDayOfWeek int    `json:"entry_day_of_week" gorm:"type:smallint;not null;column:entry_day_of_week"`
	EntryStartTime string `json:"entry_start_time" gorm:"type:time;not null;column:entry_start_time"`
	EntryEndTime   string `json:"entry_end_time" gorm:"type:time;not null;column:entry_end_time"`

	EntryCreatedAt time.Time      `json:"entry_created_at" gorm:"column:entry_created_at;autoCreateTime"`
	EntryDeletedAt gorm.DeletedAt `json:"entry_deleted_at,omitempty" gorm:"column:entry_deleted_at;index"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }

func (m *TimetableEntryModel) BeforeCreate(_ *gorm.DB) error {
	if m.EntryID == uuid.Nil {
		m.EntryID = uuid.New()
	}
	return nil
}
