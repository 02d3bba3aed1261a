// file: internals/features/activities/dto/field_activity_dto.go
package dto

import (
	"errors"

	"github.com/google/uuid"

	"unischedule_backend/internals/features/activities/model"
)

var ErrStartAfterEnd = errors.New("start date must be on or before end date")

type CreateFieldActivityRequest struct {
	ActivitySubjectID uuid.UUID `json:"activity_subject_id" validate:"required"`

	ActivityType          string `json:"activity_type" validate:"required,oneof='Teaching Practice' 'Internship' 'Field Work'"`
	ActivityDurationWeeks int    `json:"activity_duration_weeks" validate:"required,min=1,max=52"`

	ActivityStartDate string `json:"activity_start_date" validate:"required,datetime=2006-01-02"`
	ActivityEndDate   string `json:"activity_end_date" validate:"required,datetime=2006-01-02"`

	ActivityLocation     string     `json:"activity_location" validate:"omitempty,max=255"`
	ActivitySupervisorID *uuid.UUID `json:"activity_supervisor_id" validate:"omitempty"`
}

// ToModel rejects inverted date ranges; ISO dates compare correctly as
// strings so no parsing is needed here.
func (r CreateFieldActivityRequest) ToModel() (model.FieldActivityModel, error) {
	m := model.FieldActivityModel{
		ActivitySubjectID:     r.ActivitySubjectID,
		ActivityType:          r.ActivityType,
		ActivityDurationWeeks: r.ActivityDurationWeeks,
		ActivityStartDate:     r.ActivityStartDate,
		ActivityEndDate:       r.ActivityEndDate,
		ActivityLocation:      r.ActivityLocation,
		ActivitySupervisorID:  r.ActivitySupervisorID,
	}
	if r.ActivityStartDate > r.ActivityEndDate {
		return m, ErrStartAfterEnd
	}
	return m, nil
}
