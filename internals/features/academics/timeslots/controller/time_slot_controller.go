// file: internals/features/academics/timeslots/controller/time_slot_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/timeslots/dto"
	"unischedule_backend/internals/features/academics/timeslots/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeSlotController(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &TimeSlotController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Time slot already exists for this institution, day and window")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Time slot created", m)
}

/* ============================ LIST ============================ */
// Filters: ?institution_id=, ?day_of_week=
func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TimeSlotModel{})
	if v := c.Query("institution_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution_id filter")
		}
		q = q.Where("time_slot_institution_id = ?", id)
	}
	if v := c.Query("day_of_week"); v != "" {
		q = q.Where("time_slot_day_of_week = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.TimeSlotModel
	if err := q.
		Order("time_slot_day_of_week ASC, time_slot_start_time ASC, time_slot_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *TimeSlotController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time slot id")
	}
	var m model.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "time_slot_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Time slot not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *TimeSlotController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time slot id")
	}

	var req dto.UpdateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TimeSlotModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "time_slot_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Time slot not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Time slot already exists for this institution, day and window")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Time slot updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: timetable entries pinned to the slot, then the slot row.
func (ctl *TimeSlotController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid time slot id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.TimeSlotModel
		if err := tx.First(&m, "time_slot_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Time slot not found")
		}
		if err := tx.Where("entry_time_slot_id = ?", id).
			Delete(&ttModel.TimetableEntryModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Time slot deleted", fiber.Map{"time_slot_id": id})
}
