package database

import (
	"log"

	progModel "unischedule_backend/internals/features/academics/programs/model"
	roomModel "unischedule_backend/internals/features/academics/rooms/model"
	subjModel "unischedule_backend/internals/features/academics/subjects/model"
	teachModel "unischedule_backend/internals/features/academics/teachers/model"
	slotModel "unischedule_backend/internals/features/academics/timeslots/model"
	actModel "unischedule_backend/internals/features/activities/model"
	compModel "unischedule_backend/internals/features/compliance/model"
	consModel "unischedule_backend/internals/features/constraints/model"
	instModel "unischedule_backend/internals/features/institutions/model"
	studModel "unischedule_backend/internals/features/students/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
)

// Migrate applies the schema. Master data first, generated artifacts last so
// foreign keys always have a target.
func Migrate() {
	log.Println("🛠  Running AutoMigrate...")
	err := DB.AutoMigrate(
		&instModel.InstitutionModel{},
		&progModel.ProgramModel{},
		&progModel.SemesterModel{},
		&subjModel.SubjectModel{},
		&teachModel.TeacherModel{},
		&subjModel.SubjectTeacherAssignmentModel{},
		&roomModel.ClassroomModel{},
		&slotModel.TimeSlotModel{},
		&actModel.FieldActivityModel{},
		&studModel.StudentModel{},
		&consModel.ConstraintModel{},
		&compModel.NEPCategoryModel{},
		&ttModel.TimetableModel{},
		&ttModel.TimetableEntryModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("✅ AutoMigrate done.")
}
