// file: internals/features/constraints/route/constraint_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/constraints/controller"
)

func ConstraintRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewConstraintController(db, v)

	r := api.Group("/constraints")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Delete("/:id", ctl.Delete)
}
