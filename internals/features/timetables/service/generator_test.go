// file: internals/features/timetables/service/generator_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	roommodel "unischedule_backend/internals/features/academics/rooms/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	constraintmodel "unischedule_backend/internals/features/constraints/model"
)

func mkSubject(code string, credits, theory int) subjectmodel.SubjectModel {
	return subjectmodel.SubjectModel{
		SubjectID:          uuid.New(),
		SubjectName:        "Subject " + code,
		SubjectCode:        code,
		SubjectCredits:     credits,
		SubjectTheoryHours: theory,
	}
}

func mkRoom(name string) roommodel.ClassroomModel {
	return roommodel.ClassroomModel{
		ClassroomID:          uuid.New(),
		ClassroomName:        name,
		ClassroomIsAvailable: true,
	}
}

func weekGrid(days, hoursPerDay int) []slotmodel.TimeSlotModel {
	var out []slotmodel.TimeSlotModel
	for d := 0; d < days; d++ {
		for h := 0; h < hoursPerDay; h++ {
			out = append(out, mkSlot(d, clock(9*60+h*60), clock(10*60+h*60)))
		}
	}
	return out
}

func TestNaivePlacerProducesValidPlan(t *testing.T) {
	subjA := mkSubject("CS101", 4, 4)
	subjB := mkSubject("MA101", 3, 3)
	teacherA := mkTeacher(20)
	teacherB := mkTeacher(20)
	rooms := []roommodel.ClassroomModel{mkRoom("R-101"), mkRoom("R-102")}
	slots := weekGrid(5, 6)

	assignments := []subjectmodel.SubjectTeacherAssignmentModel{
		mkAssignment(subjA.SubjectID, teacherA.TeacherID),
		mkAssignment(subjB.SubjectID, teacherB.TeacherID),
	}
	teachers := []teachermodel.TeacherModel{teacherA, teacherB}

	plan, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects:    []subjectmodel.SubjectModel{subjA, subjB},
		Assignments: assignments,
		Teachers:    teachers,
		Classrooms:  rooms,
		Slots:       slots,
	})
	require.NoError(t, err)
	assert.Len(t, plan, 7) // 4 + 3 weekly hours

	// Whatever the placer emits must survive its own validation.
	assert.Empty(t, Validate(plan, slots, assignments, teachers, nil))

	for _, e := range plan {
		switch e.SubjectID {
		case subjA.SubjectID:
			assert.Equal(t, teacherA.TeacherID, e.TeacherID, "placer must honor the assignment")
		case subjB.SubjectID:
			assert.Equal(t, teacherB.TeacherID, e.TeacherID, "placer must honor the assignment")
		default:
			t.Fatalf("plan contains unknown subject %s", e.SubjectID)
		}
	}
}

func TestNaivePlacerSkipsUnassignedSubjects(t *testing.T) {
	assigned := mkSubject("CS101", 2, 2)
	orphan := mkSubject("PH101", 2, 2)
	teacher := mkTeacher(20)
	slots := weekGrid(5, 4)

	plan, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects: []subjectmodel.SubjectModel{assigned, orphan},
		Assignments: []subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(assigned.SubjectID, teacher.TeacherID),
		},
		Teachers:   []teachermodel.TeacherModel{teacher},
		Classrooms: []roommodel.ClassroomModel{mkRoom("R-101")},
		Slots:      slots,
	})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	for _, e := range plan {
		assert.Equal(t, assigned.SubjectID, e.SubjectID)
	}
}

func TestNaivePlacerFallsBackToCredits(t *testing.T) {
	// No hour breakdown recorded: weekly hours fall back to the credit count.
	subj := mkSubject("EN101", 3, 0)
	teacher := mkTeacher(20)

	plan, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects: []subjectmodel.SubjectModel{subj},
		Assignments: []subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subj.SubjectID, teacher.TeacherID),
		},
		Teachers:   []teachermodel.TeacherModel{teacher},
		Classrooms: []roommodel.ClassroomModel{mkRoom("R-101")},
		Slots:      weekGrid(5, 2),
	})
	require.NoError(t, err)
	assert.Len(t, plan, 3)
}

func TestNaivePlacerErrorsWhenGridTooSmall(t *testing.T) {
	subj := mkSubject("CS101", 4, 4)
	teacher := mkTeacher(20)

	_, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects: []subjectmodel.SubjectModel{subj},
		Assignments: []subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subj.SubjectID, teacher.TeacherID),
		},
		Teachers:   []teachermodel.TeacherModel{teacher},
		Classrooms: []roommodel.ClassroomModel{mkRoom("R-101")},
		Slots:      weekGrid(1, 2), // only 2 slots for 4 hours
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CS101")
}

func TestNaivePlacerRespectsHardUnavailability(t *testing.T) {
	subj := mkSubject("CS101", 2, 2)
	teacher := mkTeacher(20)
	teacherID := teacher.TeacherID

	block := constraintmodel.ConstraintModel{
		ConstraintID:          uuid.New(),
		ConstraintType:        "teacher_unavailable",
		ConstraintEntityID:    &teacherID,
		ConstraintDescription: "no Mondays",
		ConstraintIsHard:      true,
		ConstraintMetadata:    datatypes.JSON([]byte(`{"day_of_week": 0}`)),
	}

	slots := weekGrid(2, 2) // Monday and Tuesday
	plan, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects: []subjectmodel.SubjectModel{subj},
		Assignments: []subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subj.SubjectID, teacherID),
		},
		Teachers:           []teachermodel.TeacherModel{teacher},
		Classrooms:         []roommodel.ClassroomModel{mkRoom("R-101")},
		Slots:              slots,
		Constraints:        []constraintmodel.ConstraintModel{block},
		RespectConstraints: true,
	})
	require.NoError(t, err)
	require.Len(t, plan, 2)

	wins := buildWindows(slots)
	for _, e := range plan {
		assert.Equal(t, 1, wins[e.TimeSlotID].day, "Monday is blocked, everything lands on Tuesday")
	}
}

func TestNaivePlacerIgnoresSoftConstraintsWhenDisabled(t *testing.T) {
	subj := mkSubject("CS101", 2, 2)
	teacher := mkTeacher(20)
	teacherID := teacher.TeacherID

	block := constraintmodel.ConstraintModel{
		ConstraintID:          uuid.New(),
		ConstraintType:        "teacher_unavailable",
		ConstraintEntityID:    &teacherID,
		ConstraintDescription: "no Mondays",
		ConstraintIsHard:      true,
		ConstraintMetadata:    datatypes.JSON([]byte(`{"day_of_week": 0}`)),
	}

	slots := weekGrid(1, 2) // Monday only
	plan, err := NaivePlacer{}.Generate(context.Background(), GenerateInput{
		Subjects: []subjectmodel.SubjectModel{subj},
		Assignments: []subjectmodel.SubjectTeacherAssignmentModel{
			mkAssignment(subj.SubjectID, teacherID),
		},
		Teachers:           []teachermodel.TeacherModel{teacher},
		Classrooms:         []roommodel.ClassroomModel{mkRoom("R-101")},
		Slots:              slots,
		Constraints:        []constraintmodel.ConstraintModel{block},
		RespectConstraints: false,
	})
	require.NoError(t, err)
	assert.Len(t, plan, 2)
}
