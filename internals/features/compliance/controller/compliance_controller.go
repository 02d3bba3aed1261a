// file: internals/features/compliance/controller/compliance_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	progmodel "unischedule_backend/internals/features/academics/programs/model"
	"unischedule_backend/internals/features/compliance/model"
	"unischedule_backend/internals/features/compliance/service"
	helper "unischedule_backend/internals/helpers"
)

type ComplianceController struct {
	DB *gorm.DB
}

func NewComplianceController(db *gorm.DB) *ComplianceController {
	return &ComplianceController{DB: db}
}

/* ============================ CATEGORIES ============================ */
// GET /nep-categories: the seeded vocabulary, mostly for dashboard dropdowns.
func (ctl *ComplianceController) ListCategories(c *fiber.Ctx) error {
	var items []model.NEPCategoryModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("nep_category_code ASC").
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", items)
}

/* ============================ REPORT ============================ */
// GET /programs/:program_id/compliance
func (ctl *ComplianceController) Report(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("program_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		First(&progmodel.ProgramModel{}, "program_id = ?", programID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Program not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	report, err := service.ComplianceReport(c.UserContext(), ctl.DB, programID)
	if err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", report)
}
