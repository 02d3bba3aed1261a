// file: internals/route/details/scheduling_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "unischedule_backend/internals/features/activities/route"
	complianceRoute "unischedule_backend/internals/features/compliance/route"
	constraintRoute "unischedule_backend/internals/features/constraints/route"
	timetableRoute "unischedule_backend/internals/features/timetables/route"
)

// SchedulingRoutes mounts generation, grid reads, publishing, constraints,
// field activities and the NEP compliance reports.
func SchedulingRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	constraintRoute.ConstraintRoutes(api, db, v)
	timetableRoute.TimetableRoutes(api, db, v)
	activityRoute.FieldActivityRoutes(api, db, v)
	complianceRoute.ComplianceRoutes(api, db)
}
