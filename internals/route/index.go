// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "unischedule_backend/internals/middlewares/auth"
	routeDetails "unischedule_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// One validator instance shared by every controller.
	v := validator.New(validator.WithRequiredStructEnabled())

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
		})
	})

	// ===================== API =====================
	log.Println("[INFO] Setting up /api group...")
	api := app.Group("/api")

	// With JWT_SECRET set the whole dashboard surface requires a token;
	// without it (local dev, tests) the API stays open.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		api.Use(authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              secret,
			AllowCookieFallback: true,
		}))
	}

	log.Println("[INFO] Setting up MasterDataRoutes...")
	routeDetails.MasterDataRoutes(api, db, v)

	log.Println("[INFO] Setting up SchedulingRoutes...")
	routeDetails.SchedulingRoutes(api, db, v)
}
