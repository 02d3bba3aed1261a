// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudentController(db, v)

	r := api.Group("/students")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
