// file: internals/features/compliance/route/compliance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/compliance/controller"
)

func ComplianceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewComplianceController(db)

	api.Get("/nep-categories", ctl.ListCategories)
	api.Get("/programs/:program_id/compliance", ctl.Report)
}
