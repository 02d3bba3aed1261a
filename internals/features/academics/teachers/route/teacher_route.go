// file: internals/features/academics/teachers/route/teacher_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/teachers/controller"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTeacherController(db, v)

	r := api.Group("/teachers")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
