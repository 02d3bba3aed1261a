// file: internals/features/activities/route/field_activity_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/activities/controller"
)

func FieldActivityRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewFieldActivityController(db, v)

	r := api.Group("/field-activities")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
}
