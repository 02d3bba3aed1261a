// file: internals/features/timetables/service/validate.go
package service

import (
	"fmt"

	"github.com/google/uuid"

	"unischedule_backend/internals/constants"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	helper "unischedule_backend/internals/helpers"
)

/* ============================ VIOLATIONS ============================ */

const (
	ViolationRoomDoubleBooked    = "ROOM_DOUBLE_BOOKED"
	ViolationTeacherDoubleBooked = "TEACHER_DOUBLE_BOOKED"
	ViolationTeacherOverCap      = "TEACHER_OVER_CAP"
	ViolationMissingAssignment   = "MISSING_ASSIGNMENT"
	ViolationSlotNotFound        = "SLOT_NOT_FOUND"
)

type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlanEntry is one proposed placement: which subject+teacher+classroom goes
// into which slot. Day and window are derived from the slot, never trusted
// from the caller.
type PlanEntry struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`
	ClassroomID uuid.UUID `json:"classroom_id"`
	TimeSlotID  uuid.UUID `json:"time_slot_id"`
}

type window struct {
	day        int
	start, end int // minutes since midnight
}

func (w window) overlaps(o window) bool {
	return w.day == o.day && w.start < o.end && o.start < w.end
}

func (w window) String() string {
	return fmt.Sprintf("%s %s-%s", constants.DayName(w.day), helper.FormatClock(w.start), helper.FormatClock(w.end))
}

func buildWindows(slots []slotmodel.TimeSlotModel) map[uuid.UUID]window {
	wins := make(map[uuid.UUID]window, len(slots))
	for _, s := range slots {
		start, errS := helper.ParseClock(s.TimeSlotStartTime)
		end, errE := helper.ParseClock(s.TimeSlotEndTime)
		if errS != nil || errE != nil {
			continue
		}
		wins[s.TimeSlotID] = window{day: s.TimeSlotDayOfWeek, start: start, end: end}
	}
	return wins
}

/* ============================ VALIDATE ============================ */

// Validate checks a full placement plan against the hard scheduling rules and
// returns EVERY violation, not just the first, so the operator can fix all
// conflicts in one pass. Pure function: no DB access, order of the result is
// deterministic for a given input order.
//
// committedMinutes carries each teacher's weekly minutes already in force
// elsewhere (other semesters' timetables); the cap check counts plan minutes
// on top of it. Nil means no outside load.
//
// Overlap is on [start,end) within the same day: back-to-back slots like
// 09:00-10:00 and 10:00-11:00 never conflict.
func Validate(
	entries []PlanEntry,
	slots []slotmodel.TimeSlotModel,
	assignments []subjectmodel.SubjectTeacherAssignmentModel,
	teachers []teachermodel.TeacherModel,
	committedMinutes map[uuid.UUID]int,
) []Violation {
	violations := []Violation{}

	wins := buildWindows(slots)

	assigned := make(map[uuid.UUID]map[uuid.UUID]bool, len(assignments))
	for _, a := range assignments {
		if assigned[a.AssignmentSubjectID] == nil {
			assigned[a.AssignmentSubjectID] = map[uuid.UUID]bool{}
		}
		assigned[a.AssignmentSubjectID][a.AssignmentTeacherID] = true
	}

	roomUse := map[uuid.UUID][]window{}
	teacherUse := map[uuid.UUID][]window{}
	teacherMinutes := map[uuid.UUID]int{}
	for id, m := range committedMinutes {
		teacherMinutes[id] = m
	}

	for i, e := range entries {
		win, ok := wins[e.TimeSlotID]
		if !ok {
			violations = append(violations, Violation{
				Code:    ViolationSlotNotFound,
				Message: fmt.Sprintf("entry %d references unknown time slot %s", i, e.TimeSlotID),
			})
			continue
		}

		if !assigned[e.SubjectID][e.TeacherID] {
			violations = append(violations, Violation{
				Code:    ViolationMissingAssignment,
				Message: fmt.Sprintf("teacher %s is not assigned to subject %s", e.TeacherID, e.SubjectID),
			})
		}

		for _, prev := range roomUse[e.ClassroomID] {
			if win.overlaps(prev) {
				violations = append(violations, Violation{
					Code:    ViolationRoomDoubleBooked,
					Message: fmt.Sprintf("classroom %s double-booked on %s", e.ClassroomID, win),
				})
			}
		}
		for _, prev := range teacherUse[e.TeacherID] {
			if win.overlaps(prev) {
				violations = append(violations, Violation{
					Code:    ViolationTeacherDoubleBooked,
					Message: fmt.Sprintf("teacher %s double-booked on %s", e.TeacherID, win),
				})
			}
		}

		roomUse[e.ClassroomID] = append(roomUse[e.ClassroomID], win)
		teacherUse[e.TeacherID] = append(teacherUse[e.TeacherID], win)
		teacherMinutes[e.TeacherID] += win.end - win.start
	}

	// Iterate the teachers slice, not the minutes map, so the violation order
	// is stable.
	for _, t := range teachers {
		capMinutes := t.TeacherMaxHoursPerWeek * 60
		if capMinutes <= 0 {
			continue
		}
		if used := teacherMinutes[t.TeacherID]; used > capMinutes {
			violations = append(violations, Violation{
				Code: ViolationTeacherOverCap,
				Message: fmt.Sprintf("teacher %s scheduled %d min/week, cap is %d min",
					t.TeacherID, used, capMinutes),
			})
		}
	}

	return violations
}
