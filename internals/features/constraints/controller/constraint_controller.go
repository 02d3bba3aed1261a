// file: internals/features/constraints/controller/constraint_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/constraints/dto"
	"unischedule_backend/internals/features/constraints/model"
	helper "unischedule_backend/internals/helpers"
)

type ConstraintController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewConstraintController(db *gorm.DB, v *validator.Validate) *ConstraintController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ConstraintController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *ConstraintController) Create(c *fiber.Ctx) error {
	var req dto.CreateConstraintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid constraint_metadata")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Constraint created", m)
}

/* ============================ LIST ============================ */
// Filters: ?constraint_type=, ?is_hard=
func (ctl *ConstraintController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ConstraintModel{})
	if v := c.Query("constraint_type"); v != "" {
		q = q.Where("constraint_type = ?", v)
	}
	if v := c.Query("is_hard"); v != "" {
		q = q.Where("constraint_is_hard = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.ConstraintModel
	if err := q.
		Order("constraint_priority DESC, constraint_created_at ASC, constraint_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ DELETE ============================ */
func (ctl *ConstraintController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid constraint id")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("constraint_id = ?", id).
		Delete(&model.ConstraintModel{})
	if res.Error != nil {
		fe := helper.TranslateDBError(res.Error, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Constraint not found")
	}
	return helper.JsonDeleted(c, "Constraint deleted", fiber.Map{"constraint_id": id})
}
