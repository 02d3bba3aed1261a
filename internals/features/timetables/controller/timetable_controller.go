// file: internals/features/timetables/controller/timetable_controller.go
package controller

import (
	"encoding/json"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	progmodel "unischedule_backend/internals/features/academics/programs/model"
	"unischedule_backend/internals/features/timetables/dto"
	"unischedule_backend/internals/features/timetables/model"
	"unischedule_backend/internals/features/timetables/service"
	helper "unischedule_backend/internals/helpers"
)

type TimetableController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator service.Generator
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &TimetableController{DB: db, Validate: v, Generator: service.NaivePlacer{}}
}

/* ============================ GENERATE ============================ */
// POST /generate-timetable
func (ctl *TimetableController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()

	var program progmodel.ProgramModel
	if err := ctl.DB.WithContext(ctx).
		First(&program, "program_id = ?", req.ProgramID).Error; err != nil {
		fe := helper.TranslateDBError(err, "Program not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	var semester progmodel.SemesterModel
	if err := ctl.DB.WithContext(ctx).
		First(&semester, "semester_program_id = ? AND semester_number = ?", req.ProgramID, req.Semester).Error; err != nil {
		fe := helper.TranslateDBError(err, "Semester not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	in, err := ctl.loadGenerateInput(c, program, semester)
	if err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	in.OptimizeFor = req.OptimizeFor
	if in.OptimizeFor == "" {
		in.OptimizeFor = constants.OptimizeBalanced
	}
	in.RespectConstraints = req.RespectConstraints == nil || *req.RespectConstraints

	entries, err := ctl.Generator.Generate(ctx, in)
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity,
			helper.CodeConstraintViolation, err.Error())
	}

	params, _ := json.Marshal(dto.GenerationParameters{
		OptimizeFor:        in.OptimizeFor,
		RespectConstraints: in.RespectConstraints,
	})
	academicYear := req.AcademicYear
	if academicYear == "" {
		academicYear = semester.SemesterAcademicYear
	}

	tt, violations, err := service.ReplaceTimetable(ctx, ctl.DB, semester.SemesterID, entries, service.ReplaceOptions{
		AcademicYear: academicYear,
		GeneratedBy:  generatedBy(c),
		Parameters:   datatypes.JSON(params),
	})
	if err != nil {
		return helper.JsonErrorCode(c, fiber.StatusInternalServerError,
			helper.CodeTransactionAborted, "Timetable replacement failed, previous schedule kept")
	}
	if len(violations) > 0 {
		return helper.JsonConstraintViolations(c, "Generated schedule failed validation", violations)
	}

	_, grid, err := service.LoadGrid(ctx, ctl.DB, semester.SemesterID)
	if err != nil {
		fe := helper.TranslateDBError(err, "Timetable not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Timetable generated",
		"timetable_id": tt.TimetableID,
		"timetable":    grid,
	})
}

/* ============================ GRID ============================ */
// GET /timetables/:semester_id/grid
func (ctl *TimetableController) Grid(c *fiber.Ctx) error {
	semesterID, err := uuid.Parse(c.Params("semester_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}
	tt, grid, err := service.LoadGrid(c.UserContext(), ctl.DB, semesterID)
	if err != nil {
		fe := helper.TranslateDBError(err, "No timetable for this semester")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"timetable": tt,
		"grid":      grid,
	})
}

/* ============================ PUBLISH ============================ */
// POST /timetables/:id/publish. Draft to published, one way.
func (ctl *TimetableController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid timetable id")
	}

	var tt model.TimetableModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&tt, "timetable_id = ?", id).Error; err != nil {
		fe := helper.TranslateDBError(err, "Timetable not found")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if tt.TimetableStatus != model.TimetableStatusDraft {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Only draft timetables can be published")
	}

	tt.TimetableStatus = model.TimetableStatusPublished
	if err := ctl.DB.WithContext(c.UserContext()).Save(&tt).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonUpdated(c, "Timetable published", tt)
}

/* ============================ ENTRIES ============================ */
// GET /timetable-entries
// Raw entry listing for integrations that want rows, not the grid.
// Filters: ?semester_id=, ?teacher_id=, ?classroom_id=, ?subject_id=, ?day_of_week=
func (ctl *TimetableController) ListEntries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	ctx := c.UserContext()

	q := ctl.DB.WithContext(ctx).Model(&model.TimetableEntryModel{})

	if v := c.Query("semester_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester_id")
		}
		var tt model.TimetableModel
		if err := ctl.DB.WithContext(ctx).
			First(&tt, "timetable_semester_id = ?", id).Error; err != nil {
			fe := helper.TranslateDBError(err, "Timetable not found")
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		q = q.Where("entry_timetable_id = ?", tt.TimetableID)
	}
	for param, column := range map[string]string{
		"teacher_id":   "entry_teacher_id",
		"classroom_id": "entry_classroom_id",
		"subject_id":   "entry_subject_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
			}
			q = q.Where(column+" = ?", id)
		}
	}
	if v := c.Query("day_of_week"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil || day < 0 || day > 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day_of_week must be 0..6")
		}
		q = q.Where("entry_day_of_week = ?", day)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var items []model.TimetableEntryModel
	if err := q.
		Order("entry_day_of_week ASC, entry_start_time ASC, entry_created_at ASC, entry_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&items).Error; err != nil {
		fe := helper.TranslateDBError(err, "")
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(total, paging.Page, paging.PerPage, len(items)))
}

/* ============================ INPUT LOADING ============================ */

func (ctl *TimetableController) loadGenerateInput(
	c *fiber.Ctx,
	program progmodel.ProgramModel,
	semester progmodel.SemesterModel,
) (service.GenerateInput, error) {
	ctx := c.UserContext()
	var in service.GenerateInput

	if err := ctl.DB.WithContext(ctx).
		Where("subject_semester_id = ?", semester.SemesterID).
		Order("subject_code ASC").
		Find(&in.Subjects).Error; err != nil {
		return in, err
	}

	subjectIDs := make([]uuid.UUID, 0, len(in.Subjects))
	for _, s := range in.Subjects {
		subjectIDs = append(subjectIDs, s.SubjectID)
	}
	if len(subjectIDs) > 0 {
		if err := ctl.DB.WithContext(ctx).
			Where("assignment_subject_id IN ?", subjectIDs).
			Find(&in.Assignments).Error; err != nil {
			return in, err
		}
	}
	if err := ctl.DB.WithContext(ctx).
		Where("teacher_institution_id = ?", program.ProgramInstitutionID).
		Find(&in.Teachers).Error; err != nil {
		return in, err
	}
	if err := ctl.DB.WithContext(ctx).
		Where("classroom_institution_id = ?", program.ProgramInstitutionID).
		Find(&in.Classrooms).Error; err != nil {
		return in, err
	}
	if err := ctl.DB.WithContext(ctx).
		Where("time_slot_institution_id = ?", program.ProgramInstitutionID).
		Find(&in.Slots).Error; err != nil {
		return in, err
	}
	if err := ctl.DB.WithContext(ctx).
		Find(&in.Constraints, "constraint_is_hard = ?", true).Error; err != nil {
		return in, err
	}
	return in, nil
}

func generatedBy(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok && v != "" {
		return v
	}
	return "system"
}
