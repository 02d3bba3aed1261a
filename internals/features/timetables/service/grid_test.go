// file: internals/features/timetables/service/grid_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roommodel "unischedule_backend/internals/features/academics/rooms/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	"unischedule_backend/internals/features/timetables/model"
)

func TestBuildGridShape(t *testing.T) {
	subj := subjectmodel.SubjectModel{
		SubjectID:          uuid.New(),
		SubjectName:        "Introduction to Programming",
		SubjectCode:        "CS101",
		SubjectCredits:     4,
		SubjectNEPCategory: "MAJOR",
	}
	teacher := teachermodel.TeacherModel{TeacherID: uuid.New(), TeacherName: "Dr. Rao"}
	room := roommodel.ClassroomModel{ClassroomID: uuid.New(), ClassroomName: "R-101"}

	entries := []model.TimetableEntryModel{
		{
			EntryID:          uuid.New(),
			EntrySubjectID:   subj.SubjectID,
			EntryTeacherID:   teacher.TeacherID,
			EntryClassroomID: room.ClassroomID,
			EntryDayOfWeek:   0,
			EntryStartTime:   "09:00:00", // Postgres time scan format
			EntryEndTime:     "10:00:00",
		},
		{
			EntryID:          uuid.New(),
			EntrySubjectID:   subj.SubjectID,
			EntryTeacherID:   teacher.TeacherID,
			EntryClassroomID: room.ClassroomID,
			EntryDayOfWeek:   2,
			EntryStartTime:   "11:00",
			EntryEndTime:     "12:00",
		},
	}

	grid := BuildGrid(entries,
		map[uuid.UUID]subjectmodel.SubjectModel{subj.SubjectID: subj},
		map[uuid.UUID]teachermodel.TeacherModel{teacher.TeacherID: teacher},
		map[uuid.UUID]roommodel.ClassroomModel{room.ClassroomID: room},
	)

	require.Len(t, grid, 2)
	require.Len(t, grid["Monday"], 1)
	require.Len(t, grid["Wednesday"], 1)

	item := grid["Monday"][0]
	assert.Equal(t, "09:00-10:00", item.Time)
	assert.Equal(t, "Introduction to Programming", item.SubjectName)
	assert.Equal(t, "CS101", item.SubjectCode)
	assert.Equal(t, "Dr. Rao", item.TeacherName)
	assert.Equal(t, "R-101", item.ClassroomName)
	assert.Equal(t, 4, item.Credits)
	assert.Equal(t, "MAJOR", item.Category)
}

func TestBuildGridOrdersByStartTime(t *testing.T) {
	subjEarly := subjectmodel.SubjectModel{SubjectID: uuid.New(), SubjectCode: "MA101"}
	subjLate := subjectmodel.SubjectModel{SubjectID: uuid.New(), SubjectCode: "CS101"}
	teacher := teachermodel.TeacherModel{TeacherID: uuid.New()}
	room := roommodel.ClassroomModel{ClassroomID: uuid.New()}

	// Inserted late-first; the grid must come back chronological.
	entries := []model.TimetableEntryModel{
		{
			EntryID: uuid.New(), EntrySubjectID: subjLate.SubjectID,
			EntryTeacherID: teacher.TeacherID, EntryClassroomID: room.ClassroomID,
			EntryDayOfWeek: 0, EntryStartTime: "14:00", EntryEndTime: "15:00",
		},
		{
			EntryID: uuid.New(), EntrySubjectID: subjEarly.SubjectID,
			EntryTeacherID: teacher.TeacherID, EntryClassroomID: room.ClassroomID,
			EntryDayOfWeek: 0, EntryStartTime: "09:00", EntryEndTime: "10:00",
		},
	}

	grid := BuildGrid(entries,
		map[uuid.UUID]subjectmodel.SubjectModel{
			subjEarly.SubjectID: subjEarly,
			subjLate.SubjectID:  subjLate,
		},
		map[uuid.UUID]teachermodel.TeacherModel{teacher.TeacherID: teacher},
		map[uuid.UUID]roommodel.ClassroomModel{room.ClassroomID: room},
	)

	monday := grid["Monday"]
	require.Len(t, monday, 2)
	assert.Equal(t, "MA101", monday[0].SubjectCode)
	assert.Equal(t, "CS101", monday[1].SubjectCode)
}

func TestBuildGridSkipsBadRows(t *testing.T) {
	entries := []model.TimetableEntryModel{
		{EntryID: uuid.New(), EntryDayOfWeek: 9, EntryStartTime: "09:00", EntryEndTime: "10:00"},
		{EntryID: uuid.New(), EntryDayOfWeek: 0, EntryStartTime: "garbage", EntryEndTime: "10:00"},
	}
	grid := BuildGrid(entries, nil, nil, nil)
	assert.Empty(t, grid)
}
