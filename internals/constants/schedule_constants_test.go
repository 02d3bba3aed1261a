// file: internals/constants/schedule_constants_test.go
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "", DayName(-1))
	assert.Equal(t, "", DayName(7))
}

func TestNEPCategoryVocabulary(t *testing.T) {
	assert.True(t, IsNEPCategory("MAJOR"))
	assert.True(t, IsNEPCategory("OE"))
	assert.False(t, IsNEPCategory("ELECTIVE"))

	for _, s := range NEPCategorySeeds {
		if s.Code == "OE" {
			assert.False(t, s.IsMandatory, "open electives carry no mandatory band")
		} else {
			assert.True(t, s.IsMandatory, "%s must be mandatory", s.Code)
		}
	}
}
