// file: internals/features/academics/programs/controller/program_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/programs/dto"
	"unischedule_backend/internals/features/academics/programs/model"
	"unischedule_backend/internals/features/academics/programs/service"
	helper "unischedule_backend/internals/helpers"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB, v *validator.Validate) *ProgramController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ProgramController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Program code already exists")
		}
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Program created", m)
}

/* ============================ LIST ============================ */
// Optional filter: ?institution_id=
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ProgramModel{})
	if v := c.Query("institution_id"); v != "" {
		instID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution_id filter")
		}
		q = q.Where("program_institution_id = ?", instID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.ProgramModel
	if err := q.
		Order("program_created_at ASC, program_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}
	var m model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "program_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Program not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "program_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Program not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Program code already exists")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Program updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: semesters, their subjects and assignments, timetables and entries,
// students of the program, then the program row. One transaction.
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.ProgramModel
		if err := tx.First(&m, "program_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Program not found")
		}
		if err := service.CascadeDeleteProgram(tx, id); err != nil {
			return helper.TranslateDBError(err, "")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Program deleted", fiber.Map{"program_id": id})
}
