// file: internals/features/academics/programs/route/program_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/programs/controller"
)

func ProgramRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	progCtl := controller.NewProgramController(db, v)
	semCtl := controller.NewSemesterController(db, v)

	r := api.Group("/programs")
	r.Get("/", progCtl.List)
	r.Get("/:id", progCtl.GetByID)
	r.Post("/", progCtl.Create)
	r.Put("/:id", progCtl.Update)
	r.Delete("/:id", progCtl.Delete)

	r.Get("/:program_id/semesters", semCtl.ListByProgram)
	r.Post("/:program_id/semesters", semCtl.Create)

	s := api.Group("/semesters")
	s.Get("/:id", semCtl.GetByID)
	s.Put("/:id", semCtl.Update)
	s.Delete("/:id", semCtl.Delete)
}
