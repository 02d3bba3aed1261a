// file: internals/features/academics/programs/service/cascade.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	progModel "unischedule_backend/internals/features/academics/programs/model"
	subjModel "unischedule_backend/internals/features/academics/subjects/model"
	studModel "unischedule_backend/internals/features/students/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
)

// Cascade scope of a semester delete: subjects (with their teacher
// assignments), the semester's timetable and its entries, then the semester
// row. Must run inside the caller's transaction.
func CascadeDeleteSemester(tx *gorm.DB, semesterID uuid.UUID) error {
	subjIDs := tx.Model(&subjModel.SubjectModel{}).
		Select("subject_id").
		Where("subject_semester_id = ?", semesterID)

	if err := tx.Where("assignment_subject_id IN (?)", subjIDs).
		Delete(&subjModel.SubjectTeacherAssignmentModel{}).Error; err != nil {
		return err
	}

	ttIDs := tx.Model(&ttModel.TimetableModel{}).
		Select("timetable_id").
		Where("timetable_semester_id = ?", semesterID)

	if err := tx.Where("entry_timetable_id IN (?)", ttIDs).
		Delete(&ttModel.TimetableEntryModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("timetable_semester_id = ?", semesterID).
		Delete(&ttModel.TimetableModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("subject_semester_id = ?", semesterID).
		Delete(&subjModel.SubjectModel{}).Error; err != nil {
		return err
	}
	return tx.Where("semester_id = ?", semesterID).
		Delete(&progModel.SemesterModel{}).Error
}

// Cascade scope of a program delete: every semester (transitively, see
// CascadeDeleteSemester), the program's students, then the program row.
func CascadeDeleteProgram(tx *gorm.DB, programID uuid.UUID) error {
	var semIDs []uuid.UUID
	if err := tx.Model(&progModel.SemesterModel{}).
		Where("semester_program_id = ?", programID).
		Pluck("semester_id", &semIDs).Error; err != nil {
		return err
	}
	for _, sid := range semIDs {
		if err := CascadeDeleteSemester(tx, sid); err != nil {
			return err
		}
	}

	if err := tx.Where("student_program_id = ?", programID).
		Delete(&studModel.StudentModel{}).Error; err != nil {
		return err
	}
	return tx.Where("program_id = ?", programID).
		Delete(&progModel.ProgramModel{}).Error
}
