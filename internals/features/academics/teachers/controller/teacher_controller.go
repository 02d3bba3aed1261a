// file: internals/features/academics/teachers/controller/teacher_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjModel "unischedule_backend/internals/features/academics/subjects/model"
	"unischedule_backend/internals/features/academics/teachers/dto"
	"unischedule_backend/internals/features/academics/teachers/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &TeacherController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid availability payload")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher email or employee id already exists in this institution")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Teacher created", m)
}

/* ============================ LIST ============================ */
// Filters: ?institution_id=, ?department=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})
	if v := c.Query("institution_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution_id filter")
		}
		q = q.Where("teacher_institution_id = ?", id)
	}
	if v := c.Query("department"); v != "" {
		q = q.Where("teacher_department = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.TeacherModel
	if err := q.
		Order("teacher_created_at ASC, teacher_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Teacher not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "teacher_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Teacher not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid availability payload")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher email or employee id already exists in this institution")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Teacher updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: the teacher's subject assignments and timetable entries,
// then the teacher row.
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.TeacherModel
		if err := tx.First(&m, "teacher_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Teacher not found")
		}
		if err := tx.Where("assignment_teacher_id = ?", id).
			Delete(&subjModel.SubjectTeacherAssignmentModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		if err := tx.Where("entry_teacher_id = ?", id).
			Delete(&ttModel.TimetableEntryModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}
