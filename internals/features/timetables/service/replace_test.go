// file: internals/features/timetables/service/replace_test.go
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	progmodel "unischedule_backend/internals/features/academics/programs/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	"unischedule_backend/internals/features/timetables/model"
)

// Hand-written schema mirroring the GORM column tags; SQLite has no
// gen_random_uuid() so ids are set in-process.
var replaceSchema = []string{
	`CREATE TABLE programs (
		program_id text PRIMARY KEY,
		program_institution_id text,
		program_name text,
		program_code text,
		program_type text,
		program_duration_semesters integer,
		program_total_credits integer,
		program_major_credits integer,
		program_mdc_credits integer,
		program_created_at datetime,
		program_updated_at datetime,
		program_deleted_at datetime
	)`,
	`CREATE TABLE semesters (
		semester_id text PRIMARY KEY,
		semester_program_id text,
		semester_number integer,
		semester_academic_year text,
		semester_created_at datetime,
		semester_updated_at datetime,
		semester_deleted_at datetime
	)`,
	`CREATE TABLE teachers (
		teacher_id text PRIMARY KEY,
		teacher_institution_id text,
		teacher_name text,
		teacher_email text,
		teacher_employee_id text,
		teacher_department text,
		teacher_expertise text,
		teacher_max_hours_per_week integer,
		teacher_availability text,
		teacher_created_at datetime,
		teacher_updated_at datetime,
		teacher_deleted_at datetime
	)`,
	`CREATE TABLE time_slots (
		time_slot_id text PRIMARY KEY,
		time_slot_institution_id text,
		time_slot_day_of_week integer,
		time_slot_start_time text,
		time_slot_end_time text,
		time_slot_slot_type text,
		time_slot_created_at datetime,
		time_slot_updated_at datetime,
		time_slot_deleted_at datetime
	)`,
	`CREATE TABLE subject_teacher_assignments (
		assignment_id text PRIMARY KEY,
		assignment_subject_id text,
		assignment_teacher_id text,
		assignment_hours_per_week integer,
		assignment_created_at datetime,
		assignment_updated_at datetime,
		assignment_deleted_at datetime
	)`,
	`CREATE TABLE timetables (
		timetable_id text PRIMARY KEY,
		timetable_semester_id text,
		timetable_status text,
		timetable_academic_year text,
		timetable_generated_at datetime,
		timetable_generated_by text,
		timetable_parameters text,
		timetable_created_at datetime,
		timetable_updated_at datetime,
		timetable_deleted_at datetime
	)`,
	`CREATE TABLE timetable_entries (
		entry_id text PRIMARY KEY,
		entry_timetable_id text,
		entry_subject_id text,
		entry_teacher_id text,
		entry_classroom_id text,
		entry_time_slot_id text,
		entry_day_of_week integer,
		entry_start_time text,
		entry_end_time text,
		entry_created_at datetime,
		entry_deleted_at datetime
	)`,
}

func openReplaceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	for _, ddl := range replaceSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

type replaceFixture struct {
	institutionID uuid.UUID
	program       progmodel.ProgramModel
	semester      progmodel.SemesterModel
	teacher       teachermodel.TeacherModel
	subjectID     uuid.UUID
	roomID        uuid.UUID
	slots         []slotmodel.TimeSlotModel
}

// seedReplaceFixture loads one program with semester 1, one teacher assigned
// to one subject, and two back-to-back Monday slots.
func seedReplaceFixture(t *testing.T, db *gorm.DB, maxHours int) replaceFixture {
	t.Helper()

	f := replaceFixture{
		institutionID: uuid.New(),
		subjectID:     uuid.New(),
		roomID:        uuid.New(),
	}

	f.program = progmodel.ProgramModel{
		ProgramID:                uuid.New(),
		ProgramInstitutionID:     f.institutionID,
		ProgramName:              "B.Ed.",
		ProgramCode:              fmt.Sprintf("BED-%s", uuid.NewString()[:8]),
		ProgramType:              "B.Ed.",
		ProgramDurationSemesters: 4,
		ProgramTotalCredits:      160,
	}
	require.NoError(t, db.Create(&f.program).Error)

	f.semester = progmodel.SemesterModel{
		SemesterID:           uuid.New(),
		SemesterProgramID:    f.program.ProgramID,
		SemesterNumber:       1,
		SemesterAcademicYear: "2026-27",
	}
	require.NoError(t, db.Create(&f.semester).Error)

	f.teacher = teachermodel.TeacherModel{
		TeacherID:              uuid.New(),
		TeacherInstitutionID:   f.institutionID,
		TeacherName:            "Dr. Rao",
		TeacherEmail:           fmt.Sprintf("%s@example.edu", uuid.NewString()[:8]),
		TeacherEmployeeID:      uuid.NewString()[:8],
		TeacherMaxHoursPerWeek: maxHours,
	}
	require.NoError(t, db.Create(&f.teacher).Error)

	require.NoError(t, db.Create(&subjectmodel.SubjectTeacherAssignmentModel{
		AssignmentID:           uuid.New(),
		AssignmentSubjectID:    f.subjectID,
		AssignmentTeacherID:    f.teacher.TeacherID,
		AssignmentHoursPerWeek: 4,
	}).Error)

	for i, win := range []struct{ start, end string }{
		{"09:00", "10:00"},
		{"10:00", "11:00"},
	} {
		slot := slotmodel.TimeSlotModel{
			TimeSlotID:            uuid.New(),
			TimeSlotInstitutionID: f.institutionID,
			TimeSlotDayOfWeek:     0,
			TimeSlotStartTime:     win.start,
			TimeSlotEndTime:       win.end,
			TimeSlotSlotType:      "theory",
		}
		require.NoError(t, db.Create(&slot).Error, "slot %d", i)
		f.slots = append(f.slots, slot)
	}
	return f
}

func (f replaceFixture) entry(slotID uuid.UUID) PlanEntry {
	return PlanEntry{
		SubjectID:   f.subjectID,
		TeacherID:   f.teacher.TeacherID,
		ClassroomID: f.roomID,
		TimeSlotID:  slotID,
	}
}

func activeEntries(t *testing.T, db *gorm.DB, timetableID uuid.UUID) []model.TimetableEntryModel {
	t.Helper()
	var rows []model.TimetableEntryModel
	require.NoError(t, db.
		Where("entry_timetable_id = ?", timetableID).
		Order("entry_start_time ASC").
		Find(&rows).Error)
	return rows
}

func TestReplaceTimetableStoresEntries(t *testing.T) {
	db := openReplaceDB(t)
	f := seedReplaceFixture(t, db, 20)

	plan := []PlanEntry{f.entry(f.slots[0].TimeSlotID), f.entry(f.slots[1].TimeSlotID)}
	tt, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID, plan,
		ReplaceOptions{AcademicYear: "2026-27", GeneratedBy: "tester"})
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, tt)

	assert.Equal(t, model.TimetableStatusDraft, tt.TimetableStatus)
	assert.Equal(t, "tester", tt.TimetableGeneratedBy)
	require.NotNil(t, tt.TimetableGeneratedAt)

	rows := activeEntries(t, db, tt.TimetableID)
	require.Len(t, rows, 2)
	// Day and window are snapshotted from the chosen slot.
	assert.Equal(t, 0, rows[0].EntryDayOfWeek)
	assert.Equal(t, "09:00", rows[0].EntryStartTime)
	assert.Equal(t, "10:00", rows[0].EntryEndTime)
	assert.Equal(t, f.slots[1].TimeSlotID, rows[1].EntryTimeSlotID)
}

func TestReplaceTimetableIdempotent(t *testing.T) {
	db := openReplaceDB(t)
	f := seedReplaceFixture(t, db, 20)
	plan := []PlanEntry{f.entry(f.slots[0].TimeSlotID), f.entry(f.slots[1].TimeSlotID)}
	opts := ReplaceOptions{AcademicYear: "2026-27", GeneratedBy: "tester"}

	first, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID, plan, opts)
	require.NoError(t, err)
	require.Empty(t, violations)

	second, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID, plan, opts)
	require.NoError(t, err)
	require.Empty(t, violations)

	// Same timetable row both times, and the stored schedule is unchanged.
	assert.Equal(t, first.TimetableID, second.TimetableID)
	rows := activeEntries(t, db, second.TimetableID)
	require.Len(t, rows, len(plan))
	for i, row := range rows {
		assert.Equal(t, f.slots[i].TimeSlotID, row.EntryTimeSlotID)
		assert.Equal(t, f.slots[i].TimeSlotStartTime, row.EntryStartTime)
	}
}

func TestReplaceTimetableKeepsPriorEntriesOnViolation(t *testing.T) {
	db := openReplaceDB(t)
	f := seedReplaceFixture(t, db, 20)
	opts := ReplaceOptions{GeneratedBy: "tester"}

	tt, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID,
		[]PlanEntry{f.entry(f.slots[0].TimeSlotID)}, opts)
	require.NoError(t, err)
	require.Empty(t, violations)
	prior := activeEntries(t, db, tt.TimetableID)
	require.Len(t, prior, 1)

	// Same room, same slot, twice: the whole replacement must roll back.
	bad := []PlanEntry{f.entry(f.slots[1].TimeSlotID), f.entry(f.slots[1].TimeSlotID)}
	got, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID, bad, opts)
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NotEmpty(t, violations)
	assert.Contains(t, codes(violations), ViolationRoomDoubleBooked)

	after := activeEntries(t, db, tt.TimetableID)
	require.Len(t, after, 1)
	assert.Equal(t, prior[0].EntryID, after[0].EntryID)
	assert.Equal(t, prior[0].EntryTimeSlotID, after[0].EntryTimeSlotID)
}

func TestReplaceTimetableRejectsForeignInstitutionSlot(t *testing.T) {
	db := openReplaceDB(t)
	f := seedReplaceFixture(t, db, 20)

	foreign := slotmodel.TimeSlotModel{
		TimeSlotID:            uuid.New(),
		TimeSlotInstitutionID: uuid.New(),
		TimeSlotDayOfWeek:     0,
		TimeSlotStartTime:     "09:00",
		TimeSlotEndTime:       "10:00",
		TimeSlotSlotType:      "theory",
	}
	require.NoError(t, db.Create(&foreign).Error)

	tt, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID,
		[]PlanEntry{f.entry(foreign.TimeSlotID)}, ReplaceOptions{GeneratedBy: "tester"})
	require.NoError(t, err)
	assert.Nil(t, tt)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationSlotNotFound, violations[0].Code)

	// Nothing was persisted for the semester.
	var count int64
	require.NoError(t, db.Model(&model.TimetableModel{}).
		Where("timetable_semester_id = ?", f.semester.SemesterID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestReplaceTimetableCountsLoadAcrossSemesters(t *testing.T) {
	db := openReplaceDB(t)
	f := seedReplaceFixture(t, db, 1) // 60 minutes per week
	opts := ReplaceOptions{GeneratedBy: "tester"}

	sem2 := progmodel.SemesterModel{
		SemesterID:           uuid.New(),
		SemesterProgramID:    f.program.ProgramID,
		SemesterNumber:       2,
		SemesterAcademicYear: "2026-27",
	}
	require.NoError(t, db.Create(&sem2).Error)

	// One hour in semester 1 fills the teacher's weekly cap.
	_, violations, err := ReplaceTimetable(context.Background(), db, f.semester.SemesterID,
		[]PlanEntry{f.entry(f.slots[0].TimeSlotID)}, opts)
	require.NoError(t, err)
	require.Empty(t, violations)

	// A second hour in semester 2 busts it even though that plan is fine
	// in isolation.
	tt, violations, err := ReplaceTimetable(context.Background(), db, sem2.SemesterID,
		[]PlanEntry{f.entry(f.slots[1].TimeSlotID)}, opts)
	require.NoError(t, err)
	assert.Nil(t, tt)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationTeacherOverCap, violations[0].Code)

	// Regenerating semester 1 itself still fits: its own entries are not
	// double counted as outside load.
	_, violations, err = ReplaceTimetable(context.Background(), db, f.semester.SemesterID,
		[]PlanEntry{f.entry(f.slots[1].TimeSlotID)}, opts)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
