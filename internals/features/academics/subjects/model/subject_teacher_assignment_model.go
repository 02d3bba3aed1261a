// file: internals/features/academics/subjects/model/subject_teacher_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectTeacherAssignmentModel: many-to-many join of subject and teacher
// with the weekly hours that teacher takes for the subject. One row per
// (subject, teacher).
type SubjectTeacherAssignmentModel struct {
	AssignmentID        uuid.UUID `json:"assignment_id" gorm:"type:uuid;primaryKey;column:assignment_id;default:gen_random_uuid()"`
	AssignmentSubjectID uuid.UUID `json:"assignment_subject_id" gorm:"type:uuid;not null;uniqueIndex:uq_assignments_subject_teacher,where:assignment_deleted_at IS NULL;column:assignment_subject_id"`
	AssignmentTeacherID uuid.UUID `json:"assignment_teacher_id" gorm:"type:uuid;not null;uniqueIndex:uq_assignments_subject_teacher;index;column:assignment_teacher_id"`

	AssignmentHoursPerWeek int `json:"assignment_hours_per_week" gorm:"not null;column:assignment_hours_per_week"`

	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at,omitempty" gorm:"column:assignment_deleted_at;index"`
}

func (SubjectTeacherAssignmentModel) TableName() string { return "subject_teacher_assignments" }
