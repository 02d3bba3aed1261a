// file: internals/features/institutions/route/institution_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/institutions/controller"
)

func InstitutionRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewInstitutionController(db, v)

	r := api.Group("/institutions")
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/", ctl.Create)
	r.Put("/:id", ctl.Update)
	r.Delete("/:id", ctl.Delete)
}
