// file: internals/constants/schedule_constants.go
package constants

// Day-of-week convention used everywhere in the store: 0..6 with 0 = Monday.
var DayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the display name, or "" for an out-of-range day.
func DayName(day int) string {
	if day < 0 || day >= len(DayNames) {
		return ""
	}
	return DayNames[day]
}

const (
	RoomTypeLecture = "lecture"
	RoomTypeLab     = "lab"
	RoomTypeSeminar = "seminar"
)

const (
	SlotTypeTheory    = "theory"
	SlotTypePractical = "practical"
	SlotTypeTutorial  = "tutorial"
)

// Field activity vocabulary; B.Ed. programs lean on the first one heavily.
const (
	ActivityTeachingPractice = "Teaching Practice"
	ActivityInternship       = "Internship"
	ActivityFieldWork        = "Field Work"
)

const (
	OptimizeBalanced          = "balanced"
	OptimizeMinimalGaps       = "minimal_gaps"
	OptimizeFacultyPreference = "faculty_preference"
	OptimizeRoomOptimization  = "room_optimization"
)
