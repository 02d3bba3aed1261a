// file: cmd/seed/main.go
//
// Standalone seeder: loads the NEP vocabulary and default slot grids without
// booting the API server. Useful for fresh environments and CI databases.
package main

import (
	"log"

	"unischedule_backend/internals/configs"
	"unischedule_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Seeder DB handle: %v", err)
	}
	defer sqlDB.Close()

	seeds.Run(db)
	log.Println("✅ Seeding done.")
}
