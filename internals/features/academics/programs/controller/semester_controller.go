// file: internals/features/academics/programs/controller/semester_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/programs/dto"
	"unischedule_backend/internals/features/academics/programs/model"
	"unischedule_backend/internals/features/academics/programs/service"
	helper "unischedule_backend/internals/helpers"
)

type SemesterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSemesterController(db *gorm.DB, v *validator.Validate) *SemesterController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SemesterController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
// POST /api/programs/:program_id/semesters. The number must stay inside the
// program duration.
func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("program_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var program model.ProgramModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&program, "program_id = ?", programID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Program not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if req.SemesterNumber > program.ProgramDurationSemesters {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Semester number %d exceeds program duration of %d semesters",
				req.SemesterNumber, program.ProgramDurationSemesters))
	}

	m := req.ToModel(programID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Semester number already exists for this program")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Semester created", m)
}

/* ============================ LIST ============================ */
func (ctl *SemesterController) ListByProgram(c *fiber.Ctx) error {
	programID, err := uuid.Parse(c.Params("program_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SemesterModel{}).
		Where("semester_program_id = ?", programID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.SemesterModel
	if err := q.
		Order("semester_number ASC, semester_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	var m model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "semester_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Semester not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SemesterModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "semester_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Semester not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if req.SemesterNumber != nil {
		var program model.ProgramModel
		if err := ctl.DB.WithContext(c.UserContext()).
			First(&program, "program_id = ?", m.SemesterProgramID).Error; err != nil {
			fe := helper.TranslateDBError(err, "Program not found")
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if *req.SemesterNumber > program.ProgramDurationSemesters {
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Semester number %d exceeds program duration of %d semesters",
					*req.SemesterNumber, program.ProgramDurationSemesters))
		}
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Semester number already exists for this program")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Semester updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: subjects (with assignments), the semester timetable and its
// entries, then the semester row.
func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.SemesterModel
		if err := tx.First(&m, "semester_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Semester not found")
		}
		if err := service.CascadeDeleteSemester(tx, id); err != nil {
			return helper.TranslateDBError(err, "")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Semester deleted", fiber.Map{"semester_id": id})
}
