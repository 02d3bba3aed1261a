// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubjectModel: a course offered in one semester. Code is unique within the
// semester; NEP category is the canonical classification (the legacy
// subject_type scheme is not carried).
//
// Weekly hours are the sum of the theory/practical/tutorial split; the split
// is kept so the generator can match practical hours to lab rooms.
type SubjectModel struct {
	SubjectID         uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`
	SubjectSemesterID uuid.UUID `json:"subject_semester_id" gorm:"type:uuid;not null;uniqueIndex:uq_subjects_semester_code,where:subject_deleted_at IS NULL;column:subject_semester_id"`

	SubjectName string `json:"subject_name" gorm:"type:text;not null;column:subject_name"`
	SubjectCode string `json:"subject_code" gorm:"type:varchar(50);not null;uniqueIndex:uq_subjects_semester_code;column:subject_code"`

	SubjectCredits     int    `json:"subject_credits" gorm:"not null;column:subject_credits"`
	SubjectNEPCategory string `json:"subject_nep_category" gorm:"type:varchar(10);not null;default:'MAJOR';index;column:subject_nep_category"`

	SubjectTheoryHours    int `json:"subject_theory_hours" gorm:"not null;default:0;column:subject_theory_hours"`
	SubjectPracticalHours int `json:"subject_practical_hours" gorm:"not null;default:0;column:subject_practical_hours"`
	SubjectTutorialHours  int `json:"subject_tutorial_hours" gorm:"not null;default:0;column:subject_tutorial_hours"`

	// order-irrelevant set of subject codes
	SubjectPrerequisites pq.StringArray `json:"subject_prerequisites" gorm:"type:text[];column:subject_prerequisites"`
	// display-ordered list of outcome strings
	SubjectLearningOutcomes datatypes.JSON `json:"subject_learning_outcomes" gorm:"type:jsonb;not null;default:'[]';column:subject_learning_outcomes"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at,omitempty" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }

// WeeklyHours is what the timetable generator has to place for this subject.
func (s SubjectModel) WeeklyHours() int {
	return s.SubjectTheoryHours + s.SubjectPracticalHours + s.SubjectTutorialHours
}
