// file: internals/route/details/master_data_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programRoute "unischedule_backend/internals/features/academics/programs/route"
	classroomRoute "unischedule_backend/internals/features/academics/rooms/route"
	subjectRoute "unischedule_backend/internals/features/academics/subjects/route"
	teacherRoute "unischedule_backend/internals/features/academics/teachers/route"
	timeslotRoute "unischedule_backend/internals/features/academics/timeslots/route"
	institutionRoute "unischedule_backend/internals/features/institutions/route"
	studentRoute "unischedule_backend/internals/features/students/route"
)

// MasterDataRoutes mounts the entity CRUD surface: institutions, programs,
// semesters, subjects, faculty assignments, teachers, classrooms, time slots
// and students.
func MasterDataRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	institutionRoute.InstitutionRoutes(api, db, v)
	programRoute.ProgramRoutes(api, db, v)
	subjectRoute.SubjectRoutes(api, db, v)
	teacherRoute.TeacherRoutes(api, db, v)
	classroomRoute.ClassroomRoutes(api, db, v)
	timeslotRoute.TimeSlotRoutes(api, db, v)
	studentRoute.StudentRoutes(api, db, v)
}
