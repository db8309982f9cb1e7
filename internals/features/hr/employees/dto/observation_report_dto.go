// file: internals/features/hr/employees/dto/observation_report_dto.go
package dto

import (
	"fmt"
	"strings"

	model "hrmku_backend/internals/features/hr/employees/model"
	ingest "hrmku_backend/internals/features/hr/ingest"
)

// ObservationReportRequest is one report as submitted over the API (direct
// append or embedded in an employee payload). The week start date arrives as
// text and goes through the same canonical date acceptance as ingestion.
// overall_score is deliberately absent: it is derived, never accepted.
type ObservationReportRequest struct {
	WeekStartDate  string `json:"week_start_date" validate:"required"`
	TrainingCentre string `json:"training_centre" validate:"omitempty,max=120"`
	Evaluator      string `json:"evaluator" validate:"omitempty,max=120"`

	Grooming        *float64 `json:"grooming" validate:"omitempty,min=1,max=5"`
	UniformStandard *float64 `json:"uniform_standard" validate:"omitempty,min=1,max=5"`
	PersonalHygiene *float64 `json:"personal_hygiene" validate:"omitempty,min=1,max=5"`
	Punctuality     *float64 `json:"punctuality" validate:"omitempty,min=1,max=5"`
	ApronsSOP       *float64 `json:"aprons_sop" validate:"omitempty,min=1,max=5"`
	GroomingRemarks *string  `json:"grooming_remarks"`

	FoodSafety         *float64 `json:"food_safety" validate:"omitempty,min=1,max=5"`
	StationCleanliness *float64 `json:"station_cleanliness" validate:"omitempty,min=1,max=5"`
	EquipmentHandling  *float64 `json:"equipment_handling" validate:"omitempty,min=1,max=5"`
	IngredientPrep     *float64 `json:"ingredient_prep" validate:"omitempty,min=1,max=5"`
	RecipeAdherence    *float64 `json:"recipe_adherence" validate:"omitempty,min=1,max=5"`
	ProductQuality     *float64 `json:"product_quality" validate:"omitempty,min=1,max=5"`
	WastageControl     *float64 `json:"wastage_control" validate:"omitempty,min=1,max=5"`
	KitchenRemarks     *string  `json:"kitchen_remarks"`

	POSOperation      *float64 `json:"pos_operation" validate:"omitempty,min=1,max=5"`
	OrderTaking       *float64 `json:"order_taking" validate:"omitempty,min=1,max=5"`
	CashHandling      *float64 `json:"cash_handling" validate:"omitempty,min=1,max=5"`
	CustomerGreeting  *float64 `json:"customer_greeting" validate:"omitempty,min=1,max=5"`
	ComplaintHandling *float64 `json:"complaint_handling" validate:"omitempty,min=1,max=5"`
	ServiceRemarks    *string  `json:"service_remarks"`

	Teamwork              *float64 `json:"teamwork" validate:"omitempty,min=1,max=5"`
	Communication         *float64 `json:"communication" validate:"omitempty,min=1,max=5"`
	Initiative            *float64 `json:"initiative" validate:"omitempty,min=1,max=5"`
	WorkSpeed             *float64 `json:"work_speed" validate:"omitempty,min=1,max=5"`
	AttendanceReliability *float64 `json:"attendance_reliability" validate:"omitempty,min=1,max=5"`
	LearningAttitude      *float64 `json:"learning_attitude" validate:"omitempty,min=1,max=5"`
	SafetyAwareness       *float64 `json:"safety_awareness" validate:"omitempty,min=1,max=5"`
	ConductRemarks        *string  `json:"conduct_remarks"`

	GeneralRemarks *string `json:"general_remarks"`
}

// ToReport builds the value object with OverallScore left at the placeholder
// 0 — the grading pipeline fills it before anything persists.
func (r *ObservationReportRequest) ToReport() (model.ObservationReport, error) {
	weekStart, err := ingest.ParseCellDate(r.WeekStartDate)
	if err != nil {
		return model.ObservationReport{}, fmt.Errorf("week_start_date: %w", err)
	}

	out := model.ObservationReport{
		WeekStartDate:  weekStart,
		TrainingCentre: strings.TrimSpace(r.TrainingCentre),
		Evaluator:      strings.TrimSpace(r.Evaluator),

		Grooming:        r.Grooming,
		UniformStandard: r.UniformStandard,
		PersonalHygiene: r.PersonalHygiene,
		Punctuality:     r.Punctuality,
		ApronsSOP:       r.ApronsSOP,

		FoodSafety:         r.FoodSafety,
		StationCleanliness: r.StationCleanliness,
		EquipmentHandling:  r.EquipmentHandling,
		IngredientPrep:     r.IngredientPrep,
		RecipeAdherence:    r.RecipeAdherence,
		ProductQuality:     r.ProductQuality,
		WastageControl:     r.WastageControl,

		POSOperation:      r.POSOperation,
		OrderTaking:       r.OrderTaking,
		CashHandling:      r.CashHandling,
		CustomerGreeting:  r.CustomerGreeting,
		ComplaintHandling: r.ComplaintHandling,

		Teamwork:              r.Teamwork,
		Communication:         r.Communication,
		Initiative:            r.Initiative,
		WorkSpeed:             r.WorkSpeed,
		AttendanceReliability: r.AttendanceReliability,
		LearningAttitude:      r.LearningAttitude,
		SafetyAwareness:       r.SafetyAwareness,
	}

	trimPtr := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		if v == "" {
			return nil
		}
		return &v
	}
	out.GroomingRemarks = trimPtr(r.GroomingRemarks)
	out.KitchenRemarks = trimPtr(r.KitchenRemarks)
	out.ServiceRemarks = trimPtr(r.ServiceRemarks)
	out.ConductRemarks = trimPtr(r.ConductRemarks)
	out.GeneralRemarks = trimPtr(r.GeneralRemarks)

	return out, nil
}
