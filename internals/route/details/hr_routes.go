// file: internals/route/details/hr_routes.go
package details

import (
	EmployeeRoutes "hrmku_backend/internals/features/hr/employees/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func HrRoutes(r fiber.Router, db *gorm.DB) {
	EmployeeRoutes.AllEmployeeRoutes(r, db)
}
