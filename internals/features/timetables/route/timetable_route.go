// file: internals/features/timetables/route/timetable_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/timetables/controller"
	"unischedule_backend/internals/middlewares"
)

func TimetableRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTimetableController(db, v)

	// Generation is the expensive path, so it gets its own rate limiter.
	api.Post("/generate-timetable", middlewares.GenerateRateLimiter(), ctl.Generate)
	api.Get("/timetable-entries", ctl.ListEntries)

	r := api.Group("/timetables")
	r.Get("/:semester_id/grid", ctl.Grid)
	r.Post("/:id/publish", ctl.Publish)
}
