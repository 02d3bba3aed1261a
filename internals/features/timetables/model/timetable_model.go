// file: internals/features/timetables/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TimetableStatusDraft     = "draft"
	TimetableStatusPublished = "published"
)

// TimetableModel: one generated schedule per semester. The row doubles as
// the lock target for regeneration: Replace takes FOR UPDATE on it so two
// concurrent regenerations of the same semester serialize.
type TimetableModel struct {
	TimetableID         uuid.UUID `json:"timetable_id" gorm:"type:uuid;primaryKey;column:timetable_id;default:gen_random_uuid()"`
	TimetableSemesterID uuid.UUID `json:"timetable_semester_id" gorm:"type:uuid;not null;uniqueIndex:uq_timetables_semester,where:timetable_deleted_at IS NULL;column:timetable_semester_id"`

	TimetableStatus       string `json:"timetable_status" gorm:"type:varchar(20);not null;default:'draft';column:timetable_status"`
	TimetableAcademicYear string `json:"timetable_academic_year" gorm:"type:varchar(20);column:timetable_academic_year"`

	TimetableGeneratedAt *time.Time     `json:"timetable_generated_at,omitempty" gorm:"column:timetable_generated_at"`
	TimetableGeneratedBy string         `json:"timetable_generated_by" gorm:"type:text;column:timetable_generated_by"`
	TimetableParameters  datatypes.JSON `json:"timetable_parameters" gorm:"type:jsonb;not null;default:'{}';column:timetable_parameters"`

	TimetableCreatedAt time.Time      `json:"timetable_created_at" gorm:"column:timetable_created_at;autoCreateTime"`
	TimetableUpdatedAt time.Time      `json:"timetable_updated_at" gorm:"column:timetable_updated_at;autoUpdateTime"`
	TimetableDeletedAt gorm.DeletedAt `json:"timetable_deleted_at,omitempty" gorm:"column:timetable_deleted_at;index"`
}

func (TimetableModel) TableName() string { return "timetables" }

// Generated rows get their id in-process instead of round-tripping to the
// column default; entries batched under the same transaction do the same.
func (m *TimetableModel) BeforeCreate(_ *gorm.DB) error {
	if m.TimetableID == uuid.Nil {
		m.TimetableID = uuid.New()
	}
	return nil
}
