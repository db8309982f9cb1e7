// file: internals/features/hr/employees/model/observation_report_model.go
package model

import "time"

// ObservationReport is one weekly evaluation of an employee. Reports live
// embedded inside the owning employee row (jsonb); they have no identity of
// their own beyond their position in the list.
//
// Score fields hold the granular 1–5 rubric marks; nil means "not evaluated"
// and is excluded from the overall mean. OverallScore is always derived —
// whatever arrives on the wire is overwritten before persisting.
type ObservationReport struct {
	// =========================
	// Meta
	// =========================
	WeekStartDate  time.Time `json:"week_start_date"`
	TrainingCentre string    `json:"training_centre"`
	Evaluator      string    `json:"evaluator"`

	// =========================
	// Section A — Grooming & Presentation
	// =========================
	Grooming        *float64 `json:"grooming,omitempty"`
	UniformStandard *float64 `json:"uniform_standard,omitempty"`
	PersonalHygiene *float64 `json:"personal_hygiene,omitempty"`
	Punctuality     *float64 `json:"punctuality,omitempty"`
	ApronsSOP       *float64 `json:"aprons_sop,omitempty"`
	GroomingRemarks *string  `json:"grooming_remarks,omitempty"`

	// =========================
	// Section B — Kitchen & Product
	// =========================
	FoodSafety         *float64 `json:"food_safety,omitempty"`
	StationCleanliness *float64 `json:"station_cleanliness,omitempty"`
	EquipmentHandling  *float64 `json:"equipment_handling,omitempty"`
	IngredientPrep     *float64 `json:"ingredient_prep,omitempty"`
	RecipeAdherence    *float64 `json:"recipe_adherence,omitempty"`
	ProductQuality     *float64 `json:"product_quality,omitempty"`
	WastageControl     *float64 `json:"wastage_control,omitempty"`
	KitchenRemarks     *string  `json:"kitchen_remarks,omitempty"`

	// =========================
	// Section C — Counter & Service
	// =========================
	POSOperation      *float64 `json:"pos_operation,omitempty"`
	OrderTaking       *float64 `json:"order_taking,omitempty"`
	CashHandling      *float64 `json:"cash_handling,omitempty"`
	CustomerGreeting  *float64 `json:"customer_greeting,omitempty"`
	ComplaintHandling *float64 `json:"complaint_handling,omitempty"`
	ServiceRemarks    *string  `json:"service_remarks,omitempty"`

	// =========================
	// Section D — Conduct & Teamwork
	// =========================
	Teamwork              *float64 `json:"teamwork,omitempty"`
	Communication         *float64 `json:"communication,omitempty"`
	Initiative            *float64 `json:"initiative,omitempty"`
	WorkSpeed             *float64 `json:"work_speed,omitempty"`
	AttendanceReliability *float64 `json:"attendance_reliability,omitempty"`
	LearningAttitude      *float64 `json:"learning_attitude,omitempty"`
	SafetyAwareness       *float64 `json:"safety_awareness,omitempty"`
	ConductRemarks        *string  `json:"conduct_remarks,omitempty"`

	GeneralRemarks *string `json:"general_remarks,omitempty"`

	// =========================
	// Derived
	// =========================
	OverallScore float64 `json:"overall_score"`
}
