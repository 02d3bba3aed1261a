// file: internals/seeds/seeds.go
package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"unischedule_backend/internals/constants"
	slotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	compliancemodel "unischedule_backend/internals/features/compliance/model"
	institutionmodel "unischedule_backend/internals/features/institutions/model"
)

// Run seeds the fixed NEP category vocabulary and a default weekly slot grid
// for every institution that has none yet. Safe to call on every boot.
func Run(db *gorm.DB) {
	if err := seedNEPCategories(db); err != nil {
		log.Printf("[ERROR] NEP category seed failed: %v", err)
	}
	if err := seedDefaultTimeSlots(db); err != nil {
		log.Printf("[ERROR] time slot seed failed: %v", err)
	}
}

/* ============================ NEP VOCABULARY ============================ */

func seedNEPCategories(db *gorm.DB) error {
	rows := make([]compliancemodel.NEPCategoryModel, 0, len(constants.NEPCategorySeeds))
	for _, s := range constants.NEPCategorySeeds {
		rows = append(rows, compliancemodel.NEPCategoryModel{
			NEPCategoryCode:        s.Code,
			NEPCategoryName:        s.Name,
			NEPCategoryMinCredits:  s.MinCredits,
			NEPCategoryMaxCredits:  s.MaxCredits,
			NEPCategoryIsMandatory: s.IsMandatory,
		})
	}
	// Bands may be tuned by hand after the first boot, so re-seeding never
	// overwrites.
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err == nil {
		log.Printf("🌱 NEP categories seeded (%d)", len(rows))
	}
	return err
}

/* ============================ DEFAULT SLOT GRID ============================ */

// Mon–Fri hourly grid, 09:00-17:00 with 13:00-14:00 kept free for lunch.
var defaultGrid = []struct {
	start, end string
}{
	{"09:00", "10:00"},
	{"10:00", "11:00"},
	{"11:00", "12:00"},
	{"12:00", "13:00"},
	{"14:00", "15:00"},
	{"15:00", "16:00"},
	{"16:00", "17:00"},
}

func seedDefaultTimeSlots(db *gorm.DB) error {
	var institutions []institutionmodel.InstitutionModel
	if err := db.Find(&institutions).Error; err != nil {
		return err
	}

	for _, inst := range institutions {
		var count int64
		if err := db.Model(&slotmodel.TimeSlotModel{}).
			Where("time_slot_institution_id = ?", inst.InstitutionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		rows := make([]slotmodel.TimeSlotModel, 0, 5*len(defaultGrid))
		for day := 0; day < 5; day++ { // Monday..Friday
			for _, g := range defaultGrid {
				rows = append(rows, slotmodel.TimeSlotModel{
					TimeSlotInstitutionID: inst.InstitutionID,
					TimeSlotDayOfWeek:     day,
					TimeSlotStartTime:     g.start,
					TimeSlotEndTime:       g.end,
					TimeSlotSlotType:      constants.SlotTypeTheory,
				})
			}
		}
		if err := db.CreateInBatches(rows, 100).Error; err != nil {
			return err
		}
		log.Printf("🌱 Default slot grid seeded for institution %s (%d slots)", inst.InstitutionCode, len(rows))
	}
	return nil
}
