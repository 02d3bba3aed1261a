// file: internals/features/activities/controller/field_activity_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/activities/dto"
	"unischedule_backend/internals/features/activities/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	helper "unischedule_backend/internals/helpers"
)

type FieldActivityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldActivityController(db *gorm.DB, v *validator.Validate) *FieldActivityController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &FieldActivityController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *FieldActivityController) Create(c *fiber.Ctx) error {
	var req dto.CreateFieldActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if errors.Is(err, dto.ErrStartAfterEnd) {
		return helper.JsonError(c, fiber.StatusBadRequest, "activity_start_date must be on or before activity_end_date")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid field activity")
	}

	var subject subjectmodel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&subject, "subject_id = ?", req.ActivitySubjectID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Subject not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Field activity created", m)
}

/* ============================ LIST ============================ */
// Filters: ?subject_id=, ?activity_type=
func (ctl *FieldActivityController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.FieldActivityModel{})
	if v := c.Query("subject_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("activity_subject_id = ?", id)
	}
	if v := c.Query("activity_type"); v != "" {
		q = q.Where("activity_type = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.FieldActivityModel
	if err := q.
		Order("activity_start_date ASC, activity_created_at ASC, activity_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}
