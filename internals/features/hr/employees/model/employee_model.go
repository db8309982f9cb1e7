// file: internals/features/hr/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// EmployeeModel maps the `employees` table. One row is the whole aggregate:
// the observation report list is embedded as jsonb, never split into its own
// table, so a report append and the derived-score refresh land in a single
// row write.
type EmployeeModel struct {
	// =========================
	// Primary Key / business key
	// =========================
	EmployeeID uuid.UUID `json:"employee_id" gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeEN string    `json:"employee_en" gorm:"column:employee_en;type:varchar(20);not null;uniqueIndex:uq_employees_en"`

	// =========================
	// Base attributes (all categories)
	// =========================
	EmployeeName           string     `json:"employee_name" gorm:"column:employee_name;type:varchar(120);not null"`
	EmployeeContact        string     `json:"employee_contact" gorm:"column:employee_contact;type:varchar(60);not null"`
	EmployeeType           string     `json:"employee_type" gorm:"column:employee_type;type:varchar(30);not null;index:idx_employees_type"`
	EmployeeTrainingOutlet string     `json:"employee_training_outlet" gorm:"column:employee_training_outlet;type:varchar(120)"`
	EmployeeOutlet         string     `json:"employee_outlet" gorm:"column:employee_outlet;type:varchar(120)"`
	EmployeeProbationStart *time.Time `json:"employee_probation_start_date" gorm:"column:employee_probation_start_date;type:date"`
	EmployeeProbationEnd   *time.Time `json:"employee_probation_end_date" gorm:"column:employee_probation_end_date;type:date"`
	EmployeeStatus         string     `json:"employee_status" gorm:"column:employee_status;type:varchar(20);not null;default:'InProgress';index:idx_employees_status"`
	EmployeeTransitDate    *time.Time `json:"employee_transit_date,omitempty" gorm:"column:employee_transit_date;type:date"`
	EmployeeRemarks        *string    `json:"employee_remarks,omitempty" gorm:"column:employee_remarks;type:text"`

	// =========================
	// Category-specific (nullable; validated per employee_type)
	// =========================
	EmployeeMentor          *string        `json:"employee_mentor,omitempty" gorm:"column:employee_mentor;type:varchar(120)"`
	EmployeeInternStart     *time.Time     `json:"employee_intern_start_date,omitempty" gorm:"column:employee_intern_start_date;type:date"`
	EmployeeInternEnd       *time.Time     `json:"employee_intern_end_date,omitempty" gorm:"column:employee_intern_end_date;type:date"`
	EmployeeTrainingForm    *string        `json:"employee_training_form,omitempty" gorm:"column:employee_training_form;type:varchar(60)"`
	EmployeeCertifiedShifts pq.StringArray `json:"employee_certified_shifts,omitempty" gorm:"column:employee_certified_shifts;type:text[]"`

	// =========================
	// Reports + derived grade
	// =========================
	EmployeeObservationReports datatypes.JSONSlice[ObservationReport] `json:"employee_observation_reports" gorm:"column:employee_observation_reports;type:jsonb"`
	EmployeeOverallGrading     float64                                `json:"employee_overall_grading_score" gorm:"column:employee_overall_grading_score;type:numeric(5,2);not null;default:0"`

	// Optimistic guard: every read-modify-write of the report list must carry
	// the version it read.
	EmployeeVersion int `json:"employee_version" gorm:"column:employee_version;not null;default:0"`

	// =========================
	// Timestamps
	// =========================
	EmployeeCreatedAt time.Time `json:"employee_created_at" gorm:"column:employee_created_at;not null;autoCreateTime"`
	EmployeeUpdatedAt time.Time `json:"employee_updated_at" gorm:"column:employee_updated_at;not null;autoUpdateTime"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
