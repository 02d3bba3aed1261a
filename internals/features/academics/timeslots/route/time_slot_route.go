// file: internals/features/academics/timeslots/route/time_slot_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/controller"
)

func TimeSlotRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTimeSlotController(db, v)

	r := api.Group("/time-slots")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
