// file: internals/features/hr/employees/route/employee_routes.go
package route

import (
	employeeController "hrmku_backend/internals/features/hr/employees/controller"
	middlewares "hrmku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Employee routes.
Mount example: AllEmployeeRoutes(app.Group("/api"), db)

Fixed paths (/summary, /observation-reports/upload) are registered before
the /:id wildcards.
*/
func AllEmployeeRoutes(r fiber.Router, db *gorm.DB) {
	empCtl := employeeController.NewEmployeeController(db)
	obsCtl := employeeController.NewObservationReportController(db)

	employees := r.Group("/employees")

	employees.Get("/", empCtl.List)           // GET /api/employees?q=&employee_type=&status=&page=&per_page=
	employees.Get("/summary", empCtl.Summary) // GET /api/employees/summary?start_date=&end_date=
	employees.Post("/observation-reports/upload", middlewares.UploadRateLimiter(), obsCtl.Upload)

	employees.Get("/:id", empCtl.GetByID)
	employees.Post("/", empCtl.Create)
	employees.Put("/:id", empCtl.Update)
	employees.Delete("/:id", empCtl.Delete)

	employees.Get("/:id/observations", obsCtl.List)
	employees.Post("/:id/observations", obsCtl.Add)
}
