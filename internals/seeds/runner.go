package seeds

import (
	employees "hrmku_backend/internals/seeds/employees"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	employees.SeedEmployeesFromJSON(db, "internals/seeds/employees/data_employees.json")
}
