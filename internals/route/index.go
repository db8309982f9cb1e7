// file: internals/route/index.go
package routes

import (
	"log"

	routeDetails "hrmku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// No auth tiers here: the HRM API is deployed inside the office network,
	// everything mounts on one public group.
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api")

	log.Println("[INFO] Mounting HR routes...")
	routeDetails.HrRoutes(api, db)
}
