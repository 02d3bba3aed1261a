// file: internals/features/academics/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeacherModel: faculty member of one institution. Email and employee id are
// unique per institution; the weekly cap bounds the sum of scheduled hours.
type TeacherModel struct {
	TeacherID            uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`
	TeacherInstitutionID uuid.UUID `json:"teacher_institution_id" gorm:"type:uuid;not null;uniqueIndex:uq_teachers_inst_email,where:teacher_deleted_at IS NULL;uniqueIndex:uq_teachers_inst_employee,where:teacher_deleted_at IS NULL;column:teacher_institution_id"`

	TeacherName       string `json:"teacher_name" gorm:"type:text;not null;column:teacher_name"`
	TeacherEmail      string `json:"teacher_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_teachers_inst_email;column:teacher_email"`
	TeacherEmployeeID string `json:"teacher_employee_id" gorm:"type:varchar(50);not null;uniqueIndex:uq_teachers_inst_employee;column:teacher_employee_id"`

	TeacherDepartment      string         `json:"teacher_department" gorm:"type:text;column:teacher_department"`
	TeacherExpertise       pq.StringArray `json:"teacher_expertise" gorm:"type:text[];column:teacher_expertise"`
	TeacherMaxHoursPerWeek int            `json:"teacher_max_hours_per_week" gorm:"not null;default:20;column:teacher_max_hours_per_week"`

	// open availability object, e.g. {"0":["09:00-12:00"],"2":["14:00-17:00"]}
	TeacherAvailability datatypes.JSON `json:"teacher_availability" gorm:"type:jsonb;not null;default:'{}';column:teacher_availability"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at,omitempty" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
