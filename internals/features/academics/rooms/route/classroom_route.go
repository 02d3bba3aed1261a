// file: internals/features/academics/rooms/route/classroom_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/rooms/controller"
)

func ClassroomRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewClassroomController(db, v)

	r := api.Group("/classrooms")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
