// file: internals/features/activities/model/field_activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldActivityModel: an off-timetable block attached to a subject, e.g. a
// teaching-practice placement or an internship. Dates are "YYYY-MM-DD"
// strings on date columns; the supervisor is an optional teacher reference.
type FieldActivityModel struct {
	ActivityID        uuid.UUID `json:"activity_id" gorm:"type:uuid;primaryKey;column:activity_id;default:gen_random_uuid()"`
	ActivitySubjectID uuid.UUID `json:"activity_subject_id" gorm:"type:uuid;not null;index;column:activity_subject_id"`

	ActivityType          string `json:"activity_type" gorm:"type:varchar(30);not null;column:activity_type"`
	ActivityDurationWeeks int    `json:"activity_duration_weeks" gorm:"not null;column:activity_duration_weeks"`

	ActivityStartDate string `json:"activity_start_date" gorm:"type:date;not null;column:activity_start_date"`
	ActivityEndDate   string `json:"activity_end_date" gorm:"type:date;not null;column:activity_end_date"`

	ActivityLocation     string     `json:"activity_location" gorm:"type:text;column:activity_location"`
	ActivitySupervisorID *uuid.UUID `json:"activity_supervisor_id,omitempty" gorm:"type:uuid;column:activity_supervisor_id"`

	ActivityCreatedAt time.Time      `json:"activity_created_at" gorm:"column:activity_created_at;autoCreateTime"`
	ActivityDeletedAt gorm.DeletedAt `json:"activity_deleted_at,omitempty" gorm:"column:activity_deleted_at;index"`
}

func (FieldActivityModel) TableName() string { return "field_activities" }
