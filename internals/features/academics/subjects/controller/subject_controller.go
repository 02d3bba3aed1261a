// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/subjects/dto"
	"unischedule_backend/internals/features/academics/subjects/model"
	ttModel "unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SubjectController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid learning outcomes payload")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already exists in this semester")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Subject created", m)
}

/* ============================ LIST ============================ */
// Filters: ?semester_id=, ?nep_category=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})
	if v := c.Query("semester_id"); v != "" {
		semID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester_id filter")
		}
		q = q.Where("subject_semester_id = ?", semID)
	}
	if v := c.Query("nep_category"); v != "" {
		q = q.Where("subject_nep_category = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.SubjectModel
	if err := q.
		Order("subject_created_at ASC, subject_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ GET BY ID ============================ */
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Subject not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", m)
}

/* ============================ UPDATE ============================ */
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Subject not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid learning outcomes payload")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already exists in this semester")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Subject updated", m)
}

/* ============================ DELETE ============================ */
// Cascade scope: the subject's teacher assignments and any timetable entries
// scheduled for it, then the subject row.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var m model.SubjectModel
		if err := tx.First(&m, "subject_id = ?", id).Error; err != nil {
			return helper.TranslateDBError(err, "Subject not found")
		}
		if err := tx.Where("assignment_subject_id = ?", id).
			Delete(&model.SubjectTeacherAssignmentModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		if err := tx.Where("entry_subject_id = ?", id).
			Delete(&ttModel.TimetableEntryModel{}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
