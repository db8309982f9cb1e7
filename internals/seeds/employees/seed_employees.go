package employees

import (
	"encoding/json"
	"log"
	"os"

	dto "hrmku_backend/internals/features/hr/employees/dto"
	model "hrmku_backend/internals/features/hr/employees/model"
	service "hrmku_backend/internals/features/hr/employees/service"

	"gorm.io/gorm"
)

// SeedEmployeesFromJSON loads demo employees from a JSON file. Seeds reuse
// the request DTO so they pass through the same normalization, category
// rules and grading as API payloads. Existing employee numbers are skipped.
func SeedEmployeesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading employee seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []dto.EmployeeRequest
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for i := range inputs {
		req := &inputs[i]
		req.Normalize()

		var existing model.EmployeeModel
		if err := db.Where("employee_en = ?", req.EN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Employee '%s' already exists, skipped.", req.EN)
			continue
		}

		if problems := req.ValidateCategory(); problems != nil {
			log.Printf("❌ Seed '%s' invalid: %v", req.EN, problems)
			continue
		}

		emp, err := req.ToModel()
		if err != nil {
			log.Printf("❌ Seed '%s' invalid: %v", req.EN, err)
			continue
		}
		service.RecomputeEmployee(emp)

		if err := db.Create(emp).Error; err != nil {
			log.Printf("❌ Failed to insert employee '%s': %v", req.EN, err)
		} else {
			log.Printf("✅ Inserted employee '%s'", req.EN)
		}
	}
}
