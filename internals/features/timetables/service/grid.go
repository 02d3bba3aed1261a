// file: internals/features/timetables/service/grid.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	roommodel "unischedule_backend/internals/features/academics/rooms/model"
	subjectmodel "unischedule_backend/internals/features/academics/subjects/model"
	teachermodel "unischedule_backend/internals/features/academics/teachers/model"
	"unischedule_backend/internals/features/timetables/model"
	helper "unischedule_backend/internals/helpers"
)

/* ============================ GRID ============================ */

// GridItem is one cell of the dashboard grid, denormalized so the UI renders
// it without further lookups.
type GridItem struct {
	Time          string `json:"time"`
	SubjectName   string `json:"subject_name"`
	SubjectCode   string `json:"subject_code"`
	TeacherName   string `json:"teacher_name"`
	ClassroomName string `json:"classroom_name"`
	Credits       int    `json:"credits"`
	Category      string `json:"category"`
}

// Grid maps day name (Monday..Sunday) to that day's items ordered by start
// time. Days with no entries are omitted.
type Grid map[string][]GridItem

// BuildGrid shapes stored entries into the display grid. Pure: lookups are
// passed in, unknown references render with empty names rather than failing
// the whole grid.
func BuildGrid(
	entries []model.TimetableEntryModel,
	subjects map[uuid.UUID]subjectmodel.SubjectModel,
	teachers map[uuid.UUID]teachermodel.TeacherModel,
	rooms map[uuid.UUID]roommodel.ClassroomModel,
) Grid {
	type cell struct {
		start int
		item  GridItem
	}
	days := map[string][]cell{}

	for _, e := range entries {
		day := constants.DayName(e.EntryDayOfWeek)
		if day == "" {
			continue
		}
		start, err := helper.ParseClock(e.EntryStartTime)
		if err != nil {
			continue
		}
		end, _ := helper.ParseClock(e.EntryEndTime)

		subj := subjects[e.EntrySubjectID]
		days[day] = append(days[day], cell{start: start, item: GridItem{
			Time:          helper.FormatClock(start) + "-" + helper.FormatClock(end),
			SubjectName:   subj.SubjectName,
			SubjectCode:   subj.SubjectCode,
			TeacherName:   teachers[e.EntryTeacherID].TeacherName,
			ClassroomName: rooms[e.EntryClassroomID].ClassroomName,
			Credits:       subj.SubjectCredits,
			Category:      subj.SubjectNEPCategory,
		}})
	}

	grid := Grid{}
	for day, cells := range days {
		sort.SliceStable(cells, func(i, j int) bool {
			if cells[i].start != cells[j].start {
				return cells[i].start < cells[j].start
			}
			return cells[i].item.SubjectCode < cells[j].item.SubjectCode
		})
		items := make([]GridItem, 0, len(cells))
		for _, c := range cells {
			items = append(items, c.item)
		}
		grid[day] = items
	}
	return grid
}

/* ============================ LOAD ============================ */

// LoadGrid fetches a semester's timetable and shapes it for display.
func LoadGrid(ctx context.Context, db *gorm.DB, semesterID uuid.UUID) (*model.TimetableModel, Grid, error) {
	var tt model.TimetableModel
	if err := db.WithContext(ctx).
		First(&tt, "timetable_semester_id = ?", semesterID).Error; err != nil {
		return nil, nil, err
	}

	var entries []model.TimetableEntryModel
	if err := db.WithContext(ctx).
		Where("entry_timetable_id = ?", tt.TimetableID).
		Order("entry_day_of_week ASC, entry_start_time ASC, entry_id ASC").
		Find(&entries).Error; err != nil {
		return nil, nil, err
	}

	subjectIDs := make([]uuid.UUID, 0, len(entries))
	teacherIDs := make([]uuid.UUID, 0, len(entries))
	roomIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		subjectIDs = append(subjectIDs, e.EntrySubjectID)
		teacherIDs = append(teacherIDs, e.EntryTeacherID)
		roomIDs = append(roomIDs, e.EntryClassroomID)
	}

	subjects := map[uuid.UUID]subjectmodel.SubjectModel{}
	teachers := map[uuid.UUID]teachermodel.TeacherModel{}
	rooms := map[uuid.UUID]roommodel.ClassroomModel{}

	if len(entries) > 0 {
		var subjRows []subjectmodel.SubjectModel
		if err := db.WithContext(ctx).Where("subject_id IN ?", subjectIDs).Find(&subjRows).Error; err != nil {
			return nil, nil, err
		}
		for _, s := range subjRows {
			subjects[s.SubjectID] = s
		}

		var teacherRows []teachermodel.TeacherModel
		if err := db.WithContext(ctx).Where("teacher_id IN ?", teacherIDs).Find(&teacherRows).Error; err != nil {
			return nil, nil, err
		}
		for _, t := range teacherRows {
			teachers[t.TeacherID] = t
		}

		var roomRows []roommodel.ClassroomModel
		if err := db.WithContext(ctx).Where("classroom_id IN ?", roomIDs).Find(&roomRows).Error; err != nil {
			return nil, nil, err
		}
		for _, r := range roomRows {
			rooms[r.ClassroomID] = r
		}
	}

	return &tt, BuildGrid(entries, subjects, teachers, rooms), nil
}
