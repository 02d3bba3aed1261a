// file: internals/features/academics/subjects/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/subjects/dto"
	"unischedule_backend/internals/features/academics/subjects/model"
	teachModel "unischedule_backend/internals/features/academics/teachers/model"
	helper "unischedule_backend/internals/helpers"
)

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssignmentController(db *gorm.DB, v *validator.Validate) *AssignmentController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &AssignmentController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// both ends must exist before the join row goes in
	var subject model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&subject, "subject_id = ?", req.AssignmentSubjectID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Subject not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	var teacher teachModel.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&teacher, "teacher_id = ?", req.AssignmentTeacherID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Teacher not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Teacher is already assigned to this subject")
		}
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, "Assignment created", m)
}

/* ============================ LIST ============================ */
// Filters: ?subject_id=, ?teacher_id=
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectTeacherAssignmentModel{})
	if v := c.Query("subject_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id filter")
		}
		q = q.Where("assignment_subject_id = ?", id)
	}
	if v := c.Query("teacher_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id filter")
		}
		q = q.Where("assignment_teacher_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.SubjectTeacherAssignmentModel
	if err := q.
		Order("assignment_created_at ASC, assignment_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ UPDATE ============================ */
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.SubjectTeacherAssignmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "assignment_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Assignment not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Assignment updated", m)
}

/* ============================ DELETE ============================ */
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("assignment_id = ?", id).
		Delete(&model.SubjectTeacherAssignmentModel{})
	if res.Error != nil {
		fe := helper.TranslateDBError(res.Error, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"assignment_id": id})
}
