// file: internals/features/academics/rooms/controller/classroom_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/rooms/dto"
	"unischedule_backend/internals/features/academics/rooms/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB, v *validator.Validate) *ClassroomController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ClassroomController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Classroom name already exists in this institution")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Classroom created", m)
}

/* ============================ LIST ============================ */
// Filters: ?institution_id=, ?room_type=, ?available=
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassroomModel{})
	if v := c.Query("institution_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution_id filter")
		}
		q = q.Where("classroom_institution_id = ?", id)
	}
	if v := c.Query("room_type"); v != "" {
		q = q.Where("classroom_room_type = ?", v)
	}
	if v := c.Query("available"); v == "true" {
		q = q.Where("classroom_is_available = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.ClassroomModel
	if err := q.
		Order("classroom_created_at ASC, classroom_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}
	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Classroom not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Classroom not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Classroom name already exists in this institution")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Classroom updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: the room's timetable entries, then the room row.
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid classroom id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.ClassroomModel
		if err := tx.First(&m, "classroom_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Classroom not found")
		}
		if err := tx.Where("entry_classroom_id = ?", id).
			Delete(&ttModel.TimetableEntryModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"classroom_id": id})
}
