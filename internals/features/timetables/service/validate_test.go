// file: internals/features/timetables/service/validate_test.go
package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
)

func mkSlot(day int, start, end string) slotmodel.TimeSlotModel {
	return slotmodel.TimeSlotModel{
		TimeSlotID:        uuid.New(),
		TimeSlotDayOfWeek: day,
		TimeSlotStartTime: start,
		TimeSlotEndTime:   end,
	}
}

func mkAssignment(subjectID, teacherID uuid.UUID) subjectmodel.SubjectTeacherAssignmentModel {
	return subjectmodel.SubjectTeacherAssignmentModel{
		AssignmentID:        uuid.New(),
		AssignmentSubjectID: subjectID,
		AssignmentTeacherID: teacherID,
	}
}

func mkTeacher(maxHours int) teachermodel.TeacherModel {
	return teachermodel.TeacherModel{
		TeacherID:              uuid.New(),
		TeacherMaxHoursPerWeek: maxHours,
	}
}

func codes(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Code)
	}
	return out
}

func TestValidateCleanPlan(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(20)
	room := uuid.New()
	s1 := mkSlot(0, "09:00", "10:00")
	s2 := mkSlot(0, "10:00", "11:00")

	violations := Validate(
		[]PlanEntry{
			{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: s1.TimeSlotID},
			{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: s2.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{s1, s2},
		[]subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subject, teacher.TeacherID)},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	assert.Empty(t, violations, "back-to-back slots in the same room must not conflict")
}

func TestValidateRoomDoubleBooked(t *testing.T) {
	subjA, subjB := uuid.New(), uuid.New()
	t1, t2 := mkTeacher(20), mkTeacher(20)
	room := uuid.New()
	slot := mkSlot(2, "11:00", "12:00")

	violations := Validate(
		[]PlanEntry{
			{SubjectID: subjA, TeacherID: t1.TeacherID, ClassroomID: room, TimeSlotID: slot.TimeSlotID},
			{SubjectID: subjB, TeacherID: t2.TeacherID, ClassroomID: room, TimeSlotID: slot.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{slot},
		[]subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subjA, t1.TeacherID),
			mkAssignment(subjB, t2.TeacherID),
		},
		[]teachermodel.TeacherModel{t1, t2},
		nil,
	)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationRoomDoubleBooked, violations[0].Code)
	assert.Contains(t, violations[0].Message, "Wednesday")
}

func TestValidateTeacherDoubleBooked(t *testing.T) {
	subjA, subjB := uuid.New(), uuid.New()
	teacher := mkTeacher(20)
	roomA, roomB := uuid.New(), uuid.New()
	// Overlapping but not identical windows on the same day.
	s1 := mkSlot(1, "09:00", "11:00")
	s2 := mkSlot(1, "10:00", "12:00")

	violations := Validate(
		[]PlanEntry{
			{SubjectID: subjA, TeacherID: teacher.TeacherID, ClassroomID: roomA, TimeSlotID: s1.TimeSlotID},
			{SubjectID: subjB, TeacherID: teacher.TeacherID, ClassroomID: roomB, TimeSlotID: s2.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{s1, s2},
		[]subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subjA, teacher.TeacherID),
			mkAssignment(subjB, teacher.TeacherID),
		},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationTeacherDoubleBooked, violations[0].Code)
}

func TestValidateSameWindowDifferentDays(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(20)
	room := uuid.New()
	s1 := mkSlot(0, "09:00", "10:00")
	s2 := mkSlot(3, "09:00", "10:00")

	violations := Validate(
		[]PlanEntry{
			{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: s1.TimeSlotID},
			{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: s2.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{s1, s2},
		[]subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subject, teacher.TeacherID)},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	assert.Empty(t, violations)
}

func TestValidateMissingAssignment(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(20)
	slot := mkSlot(0, "09:00", "10:00")

	violations := Validate(
		[]PlanEntry{
			{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: uuid.New(), TimeSlotID: slot.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{slot},
		nil,
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationMissingAssignment, violations[0].Code)
}

func TestValidateSlotNotFound(t *testing.T) {
	violations := Validate(
		[]PlanEntry{
			{SubjectID: uuid.New(), TeacherID: uuid.New(), ClassroomID: uuid.New(), TimeSlotID: uuid.New()},
		},
		nil, nil, nil, nil,
	)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationSlotNotFound, violations[0].Code)
}

func TestValidateTeacherOverCap(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(2) // 120 minutes per week
	room := uuid.New()
	slots := []slotmodel.TimeSlotModel{
		mkSlot(0, "09:00", "10:00"),
		mkSlot(1, "09:00", "10:00"),
		mkSlot(2, "09:00", "10:00"),
	}

	entries := make([]PlanEntry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, PlanEntry{
			SubjectID: subject, TeacherID: teacher.TeacherID,
			ClassroomID: room, TimeSlotID: s.TimeSlotID,
		})
	}

	violations := Validate(entries, slots,
		[]subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subject, teacher.TeacherID)},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationTeacherOverCap, violations[0].Code)
}

func TestValidateAtCapIsClean(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(2)
	room := uuid.New()
	slots := []slotmodel.TimeSlotModel{
		mkSlot(0, "09:00", "10:00"),
		mkSlot(1, "09:00", "10:00"),
	}

	entries := []PlanEntry{
		{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: slots[0].TimeSlotID},
		{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: slots[1].TimeSlotID},
	}

	violations := Validate(entries, slots,
		[]subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subject, teacher.TeacherID)},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	assert.Empty(t, violations, "exactly at cap is still compliant")
}

func TestValidateCountsCommittedMinutes(t *testing.T) {
	subject := uuid.New()
	teacher := mkTeacher(1) // 60 minutes per week
	room := uuid.New()
	slot := mkSlot(0, "09:00", "10:00")

	entries := []PlanEntry{
		{SubjectID: subject, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: slot.TimeSlotID},
	}
	assignments := []subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subject, teacher.TeacherID)}
	teachers := []teachermodel.TeacherModel{teacher}

	// Alone the plan fits the cap exactly.
	assert.Empty(t, Validate(entries, []slotmodel.TimeSlotModel{slot}, assignments, teachers, nil))

	// With an hour already booked in another semester's timetable the same
	// plan busts the weekly cap.
	committed := map[uuid.UUID]int{teacher.TeacherID: 60}
	violations := Validate(entries, []slotmodel.TimeSlotModel{slot}, assignments, teachers, committed)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationTeacherOverCap, violations[0].Code)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	subjA, subjB := uuid.New(), uuid.New()
	teacher := mkTeacher(20)
	room := uuid.New()
	slot := mkSlot(0, "09:00", "10:00")

	// Same teacher, same room, same slot, and subjB has no assignment:
	// room conflict + teacher conflict + missing assignment, all reported.
	violations := Validate(
		[]PlanEntry{
			{SubjectID: subjA, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: slot.TimeSlotID},
			{SubjectID: subjB, TeacherID: teacher.TeacherID, ClassroomID: room, TimeSlotID: slot.TimeSlotID},
		},
		[]slotmodel.TimeSlotModel{slot},
		[]subjectmodel.SubjectTeacherAssignmentModel{mkAssignment(subjA, teacher.TeacherID)},
		[]teachermodel.TeacherModel{teacher},
		nil,
	)
	got := codes(violations)
	assert.Contains(t, got, ViolationMissingAssignment)
	assert.Contains(t, got, ViolationRoomDoubleBooked)
	assert.Contains(t, got, ViolationTeacherDoubleBooked)
	assert.Len(t, violations, 3)
}

func TestValidateRandomOverlappingPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		day := rng.Intn(7)
		aStart := rng.Intn(600) + 360 // 06:00..16:00
		aEnd := aStart + 30 + rng.Intn(120)
		// Force overlap: b starts inside [aStart, aEnd).
		bStart := aStart + rng.Intn(aEnd-aStart)
		bEnd := bStart + 30 + rng.Intn(120)

		s1 := mkSlot(day, clock(aStart), clock(aEnd))
		s2 := mkSlot(day, clock(bStart), clock(bEnd))

		subjA, subjB := uuid.New(), uuid.New()
		t1, t2 := mkTeacher(0), mkTeacher(0)
		room := uuid.New()

		violations := Validate(
			[]PlanEntry{
				{SubjectID: subjA, TeacherID: t1.TeacherID, ClassroomID: room, TimeSlotID: s1.TimeSlotID},
				{SubjectID: subjB, TeacherID: t2.TeacherID, ClassroomID: room, TimeSlotID: s2.TimeSlotID},
			},
			[]slotmodel.TimeSlotModel{s1, s2},
			[]subjectmodel.SubjectTeacherAssignmentModel{
				mkAssignment(subjA, t1.TeacherID),
				mkAssignment(subjB, t2.TeacherID),
			},
			[]teachermodel.TeacherModel{t1, t2},
			nil,
		)
		require.NotEmptyf(t, violations, "iteration %d: overlap %s-%s vs %s-%s must conflict",
			i, clock(aStart), clock(aEnd), clock(bStart), clock(bEnd))
		assert.Equal(t, ViolationRoomDoubleBooked, violations[0].Code)
	}
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
