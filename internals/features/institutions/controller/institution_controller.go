// file: internals/features/institutions/controller/institution_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	progModel "unischedule_backend/internals/features/academics/programs/model"
	progService "unischedule_backend/internals/features/academics/programs/service"
	roomModel "unischedule_backend/internals/features/academics/rooms/model"
	subjModel "unischedule_backend/internals/features/academics/subjects/model"
	teachModel "unischedule_backend/internals/features/academics/teachers/model"
	slotModel "unischedule_backend/internals/features/academics/timeslots/model"
	"unischedule_backend/internals/features/institutions/dto"
	"unischedule_backend/internals/features/institutions/model"
	helper "unischedule_backend/internals/helpers"
)

type InstitutionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstitutionController(db *gorm.DB, v *validator.Validate) *InstitutionController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &InstitutionController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *InstitutionController) Create(c *fiber.Ctx) error {
	var req dto.CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact info payload")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Institution created", m)
}

/* ============================ LIST ============================ */
func (ctl *InstitutionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.WithContext(c.UserContext()).Model(&model.InstitutionModel{})
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.InstitutionModel
	if err := q.
		Order("institution_created_at ASC, institution_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *InstitutionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution id")
	}

	var m model.InstitutionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "institution_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Institution not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *InstitutionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution id")
	}

	var req dto.UpdateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.InstitutionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "institution_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Institution not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid contact info payload")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Institution updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: every program of the institution (transitively semesters,
// subjects, assignments, timetables, students), plus the institution's
// teachers, classrooms and time slots. Runs in one transaction.
func (ctl *InstitutionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.InstitutionModel
		if err := tx.First(&m, "institution_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Institution not found")
		}

		var programIDs []uuid.UUID
		if err := tx.Model(&progModel.ProgramModel{}).
			Where("program_institution_id = ?", id).
			Pluck("program_id", &programIDs).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		for _, pid := range programIDs {
			if err := progService.CascadeDeleteProgram(tx, pid); err != nil {
				return helper.TranslateDBError(err, "")
			}
		}

		teacherIDs := tx.Model(&teachModel.TeacherModel{}).
			Select("teacher_id").
			Where("teacher_institution_id = ?", id)
		if err := tx.Where("assignment_teacher_id IN (?)", teacherIDs).
			Delete(&subjModel.SubjectTeacherAssignmentModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		if err := tx.Where("teacher_institution_id = ?", id).
			Delete(&teachModel.TeacherModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		if err := tx.Where("classroom_institution_id = ?", id).
			Delete(&roomModel.ClassroomModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		if err := tx.Where("time_slot_institution_id = ?", id).
			Delete(&slotModel.TimeSlotModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Institution deleted", fiber.Map{"institution_id": id})
}
