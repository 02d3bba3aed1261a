// file: internals/features/academics/timeslots/dto/time_slot_dto.go
package dto

import (
	"errors"

	"github.com/google/uuid"

	"unischedule_backend/internals/features/academics/timeslots/model"
	helper "unischedule_backend/internals/helpers"
)

var ErrStartNotBeforeEnd = errors.New("start time must be before end time")

/* ========== CREATE ========== */

type CreateTimeSlotRequest struct {
	TimeSlotInstitutionID uuid.UUID `json:"time_slot_institution_id" validate:"required"`

	TimeSlotDayOfWeek int    `json:"time_slot_day_of_week" validate:"min=0,max=6"`
	TimeSlotStartTime string `json:"time_slot_start_time" validate:"required"`
	TimeSlotEndTime   string `json:"time_slot_end_time" validate:"required"`

	TimeSlotSlotType string `json:"time_slot_slot_type" validate:"omitempty,oneof=theory practical tutorial"`
}

// ToModel normalizes both clock values and rejects start >= end.
func (r CreateTimeSlotRequest) ToModel() (model.TimeSlotModel, error) {
	m := model.TimeSlotModel{
		TimeSlotInstitutionID: r.TimeSlotInstitutionID,
		TimeSlotDayOfWeek:     r.TimeSlotDayOfWeek,
		TimeSlotSlotType:      "theory",
	}
	start, err := helper.ParseClock(r.TimeSlotStartTime)
	if err != nil {
		return m, err
	}
	end, err := helper.ParseClock(r.TimeSlotEndTime)
	if err != nil {
		return m, err
	}
	if start >= end {
		return m, ErrStartNotBeforeEnd
	}
	m.TimeSlotStartTime = helper.FormatClock(start)
	m.TimeSlotEndTime = helper.FormatClock(end)
	if r.TimeSlotSlotType != "" {
		m.TimeSlotSlotType = r.TimeSlotSlotType
	}
	return m, nil
}

/* ========== UPDATE ========== */

type UpdateTimeSlotRequest struct {
	TimeSlotDayOfWeek *int    `json:"time_slot_day_of_week" validate:"omitempty,min=0,max=6"`
	TimeSlotStartTime *string `json:"time_slot_start_time" validate:"omitempty"`
	TimeSlotEndTime   *string `json:"time_slot_end_time" validate:"omitempty"`
	TimeSlotSlotType  *string `json:"time_slot_slot_type" validate:"omitempty,oneof=theory practical tutorial"`
}

func (r UpdateTimeSlotRequest) Apply(m *model.TimeSlotModel) error {
	if r.TimeSlotDayOfWeek != nil {
		m.TimeSlotDayOfWeek = *r.TimeSlotDayOfWeek
	}
	if r.TimeSlotStartTime != nil {
		s, err := helper.NormalizeClock(*r.TimeSlotStartTime)
		if err != nil {
			return err
		}
		m.TimeSlotStartTime = s
	}
	if r.TimeSlotEndTime != nil {
		s, err := helper.NormalizeClock(*r.TimeSlotEndTime)
		if err != nil {
			return err
		}
		m.TimeSlotEndTime = s
	}
	start, err := helper.ParseClock(m.TimeSlotStartTime)
	if err != nil {
		return err
	}
	end, err := helper.ParseClock(m.TimeSlotEndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrStartNotBeforeEnd
	}
	if r.TimeSlotSlotType != nil {
		m.TimeSlotSlotType = *r.TimeSlotSlotType
	}
	return nil
}
