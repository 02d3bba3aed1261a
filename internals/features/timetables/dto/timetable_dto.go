// file: internals/features/timetables/dto/timetable_dto.go
package dto

import "github.com/google/uuid"

type GenerateTimetableRequest struct {
	ProgramID    uuid.UUID `json:"program_id" validate:"required"`
	Semester     int       `json:"semester" validate:"required,min=1,max=12"`
	AcademicYear string    `json:"academic_year" validate:"omitempty,max=20"`

	OptimizeFor        string `json:"optimize_for" validate:"omitempty,oneof=balanced minimal_gaps faculty_preference room_optimization"`
	RespectConstraints *bool  `json:"respect_constraints" validate:"omitempty"`
}

// GenerationParameters is what gets persisted into timetable_parameters so a
// regeneration can be replayed with the same knobs.
type GenerationParameters struct {
	OptimizeFor        string `json:"optimize_for"`
	RespectConstraints bool   `json:"respect_constraints"`
}
