// file: internals/features/timetables/controller/timetable_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

var entryListSchema = []string{
	`CREATE TABLE timetables (
		timetable_id text PRIMARY KEY,
		timetable_semester_id text,
		timetable_status text,
		timetable_academic_year text,
		timetable_generated_at datetime,
		timetable_generated_by text,
		timetable_parameters text,
		timetable_created_at datetime,
		timetable_updated_at datetime,
		timetable_deleted_at datetime
	)`,
	`CREATE TABLE timetable_entries (
		entry_id text PRIMARY KEY,
		entry_timetable_id text,
		entry_subject_id text,
		entry_teacher_id text,
		entry_classroom_id text,
		entry_time_slot_id text,
		entry_day_of_week integer,
		entry_start_time text,
		entry_end_time text,
		entry_created_at datetime,
		entry_deleted_at datetime
	)`,
}

func newEntryListApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	for _, ddl := range entryListSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}

	app := fiber.New()
	app.Get("/timetable-entries", NewTimetableController(db, nil).ListEntries)
	return app, db
}

func mkEntry(timetableID, teacherID uuid.UUID, day int, start, end string) model.TimetableEntryModel {
	return model.TimetableEntryModel{
		EntryTimetableID: timetableID,
		EntrySubjectID:   uuid.New(),
		EntryTeacherID:   teacherID,
		EntryClassroomID: uuid.New(),
		EntryTimeSlotID:  uuid.New(),
		EntryDayOfWeek:   day,
		EntryStartTime:   start,
		EntryEndTime:     end,
	}
}

type entryListResponse struct {
	Success    bool                        `json:"success"`
	Data       []model.TimetableEntryModel `json:"data"`
	Pagination *helper.Pagination          `json:"pagination"`
}

func getEntries(t *testing.T, app *fiber.App, query string) (int, entryListResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/timetable-entries"+query, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out entryListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestListEntriesFiltersAndOrder(t *testing.T) {
	app, db := newEntryListApp(t)

	semA, semB := uuid.New(), uuid.New()
	ttA := model.TimetableModel{TimetableSemesterID: semA, TimetableStatus: model.TimetableStatusDraft}
	ttB := model.TimetableModel{TimetableSemesterID: semB, TimetableStatus: model.TimetableStatusDraft}
	require.NoError(t, db.Create(&ttA).Error)
	require.NoError(t, db.Create(&ttB).Error)

	rao, iyer := uuid.New(), uuid.New()
	for _, e := range []model.TimetableEntryModel{
		mkEntry(ttA.TimetableID, rao, 2, "09:00", "10:00"),
		mkEntry(ttA.TimetableID, iyer, 0, "10:00", "11:00"),
		mkEntry(ttA.TimetableID, rao, 0, "09:00", "10:00"),
		mkEntry(ttB.TimetableID, rao, 0, "09:00", "10:00"),
	} {
		require.NoError(t, db.Create(&e).Error)
	}

	status, out := getEntries(t, app, "")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Data, 4)
	// Ordered by day then start time.
	assert.Equal(t, 0, out.Data[0].EntryDayOfWeek)
	assert.Equal(t, "09:00", out.Data[0].EntryStartTime)
	assert.Equal(t, 2, out.Data[3].EntryDayOfWeek)

	status, out = getEntries(t, app, "?semester_id="+semA.String())
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, out.Data, 3)
	for _, e := range out.Data {
		assert.Equal(t, ttA.TimetableID, e.EntryTimetableID)
	}

	status, out = getEntries(t, app, "?semester_id="+semA.String()+"&teacher_id="+rao.String())
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, out.Data, 2)

	status, out = getEntries(t, app, "?day_of_week=2")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, out.Data, 1)
	assert.Equal(t, rao, out.Data[0].EntryTeacherID)

	status, out = getEntries(t, app, "?semester_id="+semA.String()+"&per_page=2")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, out.Data, 2)
	require.NotNil(t, out.Pagination)
	assert.EqualValues(t, 3, out.Pagination.Total)
	assert.True(t, out.Pagination.HasNext)
}

func TestListEntriesRejectsBadFilters(t *testing.T) {
	app, _ := newEntryListApp(t)

	status, _ := getEntries(t, app, "?day_of_week=9")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = getEntries(t, app, "?teacher_id=not-a-uuid")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = getEntries(t, app, "?semester_id="+uuid.NewString())
	assert.Equal(t, fiber.StatusNotFound, status, "unknown semester has no timetable")
}
