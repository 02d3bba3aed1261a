// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/subjects/controller"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	subjCtl := controller.NewSubjectController(db, v)
	asgCtl := controller.NewAssignmentController(db, v)

	r := api.Group("/subjects")
	r.Get("/", subjCtl.List)
	r.Get("/:id", subjCtl.GetByID)
	r.Post("/", subjCtl.Create)
	r.Put("/:id", subjCtl.Update)
	r.Delete("/:id", subjCtl.Delete)

	a := api.Group("/faculty-assignments")
	a.Get("/", asgCtl.List)
	a.Post("/", asgCtl.Create)
	a.Put("/:id", asgCtl.Update)
	a.Delete("/:id", asgCtl.Delete)
}
