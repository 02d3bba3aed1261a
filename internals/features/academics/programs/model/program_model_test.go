// file: internals/features/academics/programs/model/program_model_test.go
package model

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Schema as the uq_programs_code tag declares it: unique only among rows
// that are not soft-deleted.
const programsDDL = `CREATE TABLE programs (
	program_id text PRIMARY KEY,
	program_institution_id text,
	program_name text,
	program_code text,
	program_type text,
	program_duration_semesters integer,
	program_total_credits integer,
	program_major_credits integer,
	program_mdc_credits integer,
	program_created_at datetime,
	program_updated_at datetime,
	program_deleted_at datetime
)`

const programsCodeIndexDDL = `CREATE UNIQUE INDEX uq_programs_code
	ON programs (program_code) WHERE program_deleted_at IS NULL`

func openProgramDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(programsDDL).Error)
	require.NoError(t, db.Exec(programsCodeIndexDDL).Error)
	return db
}

func mkProgram(code string) ProgramModel {
	return ProgramModel{
		ProgramID:                uuid.New(),
		ProgramInstitutionID:     uuid.New(),
		ProgramName:              "Four Year UG",
		ProgramCode:              code,
		ProgramType:              "FYUP",
		ProgramDurationSemesters: 8,
		ProgramTotalCredits:      160,
	}
}

func TestProgramCodeUniqueAmongActiveRows(t *testing.T) {
	db := openProgramDB(t)

	first := mkProgram("FYUP-2026")
	require.NoError(t, db.Create(&first).Error)

	dup := mkProgram("FYUP-2026")
	assert.Error(t, db.Create(&dup).Error, "active duplicate code must be rejected")
}

func TestProgramCodeReusableAfterSoftDelete(t *testing.T) {
	db := openProgramDB(t)

	first := mkProgram("FYUP-2026")
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Delete(&first).Error)

	// The retired row keeps its history but no longer blocks the code.
	again := mkProgram("FYUP-2026")
	require.NoError(t, db.Create(&again).Error)

	var count int64
	require.NoError(t, db.Model(&ProgramModel{}).Unscoped().
		Where("program_code = ?", "FYUP-2026").
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
