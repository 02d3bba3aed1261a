// file: internals/features/timetables/service/generator.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"

	roommodel "unischedule_backend/internals/features/academics/rooms/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	constraintmodel "unischedule_backend/internals/features/constraints/model"
)

/* ============================ GENERATOR ============================ */

type GenerateInput struct {
	Subjects    []subjectmodel.SubjectModel
	Assignments []subjectmodel.SubjectTeacherAssignmentModel
	Teachers    []teachermodel.TeacherModel
	Classrooms  []roommodel.ClassroomModel
	Slots       []slotmodel.TimeSlotModel
	Constraints []constraintmodel.ConstraintModel

	OptimizeFor        string
	RespectConstraints bool
}

// Generator produces a placement plan for one semester. Plans are validated
// and persisted by ReplaceTimetable afterwards, so a Generator is free to be
// optimistic; a plan it cannot complete is an error, not a partial schedule.
type Generator interface {
	Generate(ctx context.Context, in GenerateInput) ([]PlanEntry, error)
}

/* ============================ NAIVE PLACER ============================ */

// NaivePlacer fills slots subject by subject, round-robin over available
// classrooms, first free slot wins. It honors teacher assignments, weekly
// hour caps and (optionally) hard teacher-unavailability constraints, but
// makes no attempt at gap minimization. Swap it out through the Generator
// interface for anything smarter.
type NaivePlacer struct{}

func (NaivePlacer) Generate(_ context.Context, in GenerateInput) ([]PlanEntry, error) {
	wins := buildWindows(in.Slots)

	slots := make([]slotmodel.TimeSlotModel, 0, len(in.Slots))
	for _, s := range in.Slots {
		if _, ok := wins[s.TimeSlotID]; ok {
			slots = append(slots, s)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		a, b := wins[slots[i].TimeSlotID], wins[slots[j].TimeSlotID]
		if a.day != b.day {
			return a.day < b.day
		}
		return a.start < b.start
	})

	rooms := make([]roommodel.ClassroomModel, 0, len(in.Classrooms))
	for _, r := range in.Classrooms {
		if r.ClassroomIsAvailable {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no available classrooms to schedule into")
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ClassroomName < rooms[j].ClassroomName })

	teacherFor := map[uuid.UUID][]uuid.UUID{}
	for _, a := range in.Assignments {
		teacherFor[a.AssignmentSubjectID] = append(teacherFor[a.AssignmentSubjectID], a.AssignmentTeacherID)
	}
	capMinutes := map[uuid.UUID]int{}
	for _, t := range in.Teachers {
		capMinutes[t.TeacherID] = t.TeacherMaxHoursPerWeek * 60
	}

	blocked := map[uuid.UUID]map[int]bool{}
	if in.RespectConstraints {
		blocked = blockedDays(in.Constraints)
	}

	subjects := append([]subjectmodel.SubjectModel(nil), in.Subjects...)
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].SubjectCode < subjects[j].SubjectCode })

	roomBusy := map[uuid.UUID][]window{}
	teacherBusy := map[uuid.UUID][]window{}
	teacherMinutes := map[uuid.UUID]int{}
	roomCursor := 0

	var plan []PlanEntry
	for _, subj := range subjects {
		candidates := teacherFor[subj.SubjectID]
		if len(candidates) == 0 {
			// Nothing to place without an assignment; the operator sees the
			// gap in the grid and in the compliance report.
			continue
		}

		hours := subj.WeeklyHours()
		if hours == 0 {
			hours = subj.SubjectCredits
		}

		for h := 0; h < hours; h++ {
			if !placeOne(subj, candidates, slots, rooms, wins, capMinutes, blocked,
				roomBusy, teacherBusy, teacherMinutes, &roomCursor, &plan) {
				return nil, fmt.Errorf("could not place hour %d/%d of subject %s: no free slot left",
					h+1, hours, subj.SubjectCode)
			}
		}
	}
	return plan, nil
}

func placeOne(
	subj subjectmodel.SubjectModel,
	candidates []uuid.UUID,
	slots []slotmodel.TimeSlotModel,
	rooms []roommodel.ClassroomModel,
	wins map[uuid.UUID]window,
	capMinutes map[uuid.UUID]int,
	blocked map[uuid.UUID]map[int]bool,
	roomBusy, teacherBusy map[uuid.UUID][]window,
	teacherMinutes map[uuid.UUID]int,
	roomCursor *int,
	plan *[]PlanEntry,
) bool {
	for _, slot := range slots {
		win := wins[slot.TimeSlotID]
		dur := win.end - win.start

		var teacherID uuid.UUID
		found := false
		for _, cand := range candidates {
			if blocked[cand][win.day] {
				continue
			}
			if capM := capMinutes[cand]; capM > 0 && teacherMinutes[cand]+dur > capM {
				continue
			}
			if anyOverlap(teacherBusy[cand], win) {
				continue
			}
			teacherID, found = cand, true
			break
		}
		if !found {
			continue
		}

		for step := 0; step < len(rooms); step++ {
			room := rooms[(*roomCursor+step)%len(rooms)]
			if anyOverlap(roomBusy[room.ClassroomID], win) {
				continue
			}
			*roomCursor = (*roomCursor + step + 1) % len(rooms)
			*plan = append(*plan, PlanEntry{
				SubjectID:   subj.SubjectID,
				TeacherID:   teacherID,
				ClassroomID: room.ClassroomID,
				TimeSlotID:  slot.TimeSlotID,
			})
			roomBusy[room.ClassroomID] = append(roomBusy[room.ClassroomID], win)
			teacherBusy[teacherID] = append(teacherBusy[teacherID], win)
			teacherMinutes[teacherID] += dur
			return true
		}
	}
	return false
}

func anyOverlap(busy []window, win window) bool {
	for _, b := range busy {
		if win.overlaps(b) {
			return true
		}
	}
	return false
}

// blockedDays reads hard teacher_unavailable constraints into a
// teacher -> day set. Metadata carries {"day_of_week": n}.
func blockedDays(constraints []constraintmodel.ConstraintModel) map[uuid.UUID]map[int]bool {
	out := map[uuid.UUID]map[int]bool{}
	for _, c := range constraints {
		if !c.ConstraintIsHard || c.ConstraintType != "teacher_unavailable" || c.ConstraintEntityID == nil {
			continue
		}
		var meta struct {
			DayOfWeek *int `json:"day_of_week"`
		}
		if err := json.Unmarshal(c.ConstraintMetadata, &meta); err != nil || meta.DayOfWeek == nil {
			continue
		}
		id := *c.ConstraintEntityID
		if out[id] == nil {
			out[id] = map[int]bool{}
		}
		out[id][*meta.DayOfWeek] = true
	}
	return out
}
