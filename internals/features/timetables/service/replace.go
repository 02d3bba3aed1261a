// file: internals/features/timetables/service/replace.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	progmodel "unischedule_backend/internals/features/academics/programs/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	"unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

type ReplaceOptions struct {
	AcademicYear string
	GeneratedBy  string
	Parameters   datatypes.JSON
}

/* ============================ REPLACE ============================ */

// ReplaceTimetable swaps the whole entry set of a semester's timetable in one
// transaction. The timetable row is taken FOR UPDATE (created first if the
// semester has none) so two concurrent regenerations of the same semester
// serialize instead of interleaving deletes and inserts.
//
// On any validation violation the transaction rolls back, the prior entries
// stay untouched, and the full violation list is returned with a nil error.
// Feeding the same entries twice yields the same stored schedule.
func ReplaceTimetable(
	ctx context.Context,
	db *gorm.DB,
	semesterID uuid.UUID,
	entries []PlanEntry,
	opts ReplaceOptions,
) (*model.TimetableModel, []Violation, error) {
	var out model.TimetableModel
	var violations []Violation

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var semester progmodel.SemesterModel
		if err := tx.First(&semester, "semester_id = ?", semesterID).Error; err != nil {
			return err
		}
		var program progmodel.ProgramModel
		if err := tx.First(&program, "program_id = ?", semester.SemesterProgramID).Error; err != nil {
			return err
		}

		var tt model.TimetableModel
		locked := tx
		// SQLite has no row locks; serialization there comes from the write lock.
		if tx.Dialector.Name() == "postgres" {
			locked = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		err := locked.First(&tt, "timetable_semester_id = ?", semesterID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			tt = model.TimetableModel{
				TimetableSemesterID: semesterID,
				TimetableStatus:     model.TimetableStatusDraft,
			}
			if err := tx.Create(&tt).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		// Only the owning institution's catalog is admissible: a plan entry
		// pinned to another institution's slot or teacher must surface as a
		// violation, not slip through a store-wide load.
		var slots []slotmodel.TimeSlotModel
		if err := tx.Where("time_slot_institution_id = ?", program.ProgramInstitutionID).
			Find(&slots).Error; err != nil {
			return err
		}
		var teachers []teachermodel.TeacherModel
		if err := tx.Where("teacher_institution_id = ?", program.ProgramInstitutionID).
			Find(&teachers).Error; err != nil {
			return err
		}
		teacherIDs := make([]uuid.UUID, 0, len(teachers))
		for _, t := range teachers {
			teacherIDs = append(teacherIDs, t.TeacherID)
		}
		var assignments []subjectmodel.SubjectTeacherAssignmentModel
		if len(teacherIDs) > 0 {
			if err := tx.Where("assignment_teacher_id IN ?", teacherIDs).
				Find(&assignments).Error; err != nil {
				return err
			}
		}

		// A teacher's weekly cap spans every timetable they appear in, so the
		// plan's minutes are checked on top of what other semesters already
		// book for them.
		committed := map[uuid.UUID]int{}
		if len(teacherIDs) > 0 {
			var inForce []model.TimetableEntryModel
			if err := tx.Where("entry_timetable_id <> ? AND entry_teacher_id IN ?",
				tt.TimetableID, teacherIDs).
				Find(&inForce).Error; err != nil {
				return err
			}
			for _, e := range inForce {
				start, errS := helper.ParseClock(e.EntryStartTime)
				end, errE := helper.ParseClock(e.EntryEndTime)
				if errS != nil || errE != nil {
					continue
				}
				committed[e.EntryTeacherID] += end - start
			}
		}

		if violations = Validate(entries, slots, assignments, teachers, committed); len(violations) > 0 {
			return errAbortReplace
		}

		if err := tx.Where("entry_timetable_id = ?", tt.TimetableID).
			Delete(&model.TimetableEntryModel{}).Error; err != nil {
			return err
		}

		wins := buildWindows(slots)
		rows := make([]model.TimetableEntryModel, 0, len(entries))
		for _, e := range entries {
			win := wins[e.TimeSlotID] // present, Validate passed
			rows = append(rows, model.TimetableEntryModel{
				EntryTimetableID: tt.TimetableID,
				EntrySubjectID:   e.SubjectID,
				EntryTeacherID:   e.TeacherID,
				EntryClassroomID: e.ClassroomID,
				EntryTimeSlotID:  e.TimeSlotID,
				EntryDayOfWeek:   win.day,
				EntryStartTime:   helper.FormatClock(win.start),
				EntryEndTime:     helper.FormatClock(win.end),
			})
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		tt.TimetableStatus = model.TimetableStatusDraft
		tt.TimetableGeneratedAt = &now
		tt.TimetableGeneratedBy = opts.GeneratedBy
		if opts.AcademicYear != "" {
			tt.TimetableAcademicYear = opts.AcademicYear
		}
		if opts.Parameters != nil {
			tt.TimetableParameters = opts.Parameters
		}
		if err := tx.Save(&tt).Error; err != nil {
			return err
		}

		out = tt
		return nil
	})

	if errors.Is(err, errAbortReplace) {
		return nil, violations, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &out, nil, nil
}

// errAbortReplace forces the transaction to roll back when validation failed;
// it never escapes ReplaceTimetable.
var errAbortReplace = errors.New("timetable replace aborted by validation")
