// file: internals/features/hr/employees/model/rubric_fields.go
package model

// FieldClass tags every rubric field explicitly instead of inferring the
// class from the field name. Scoring iterates the declared catalogs only, so
// a misnamed field can never leak into the mean.
type FieldClass int

const (
	ClassScore FieldClass = iota
	ClassRemark
	ClassMeta
)

// ScoreField declares one numeric rubric criterion: its wire name, the fixed
// sheet row it occupies on the weekly evaluation form, and typed accessors
// into ObservationReport.
type ScoreField struct {
	Name     string
	SheetRow int
	Get      func(r *ObservationReport) *float64
	Set      func(r *ObservationReport, v float64)
}

// RemarkField declares one free-text section remark.
type RemarkField struct {
	Name     string
	SheetRow int
	Get      func(r *ObservationReport) *string
	Set      func(r *ObservationReport, v string)
}

// ScoreFields is the authoritative catalog of criteria that count toward
// OverallScore. Row numbers mirror the printed weekly form, so a form
// revision is a table edit here, not a code change in the mapper.
var ScoreFields = []ScoreField{
	// Section A — Grooming & Presentation (rows 7–11)
	{Name: "grooming", SheetRow: 7,
		Get: func(r *ObservationReport) *float64 { return r.Grooming },
		Set: func(r *ObservationReport, v float64) { r.Grooming = &v }},
	{Name: "uniform_standard", SheetRow: 8,
		Get: func(r *ObservationReport) *float64 { return r.UniformStandard },
		Set: func(r *ObservationReport, v float64) { r.UniformStandard = &v }},
	{Name: "personal_hygiene", SheetRow: 9,
		Get: func(r *ObservationReport) *float64 { return r.PersonalHygiene },
		Set: func(r *ObservationReport, v float64) { r.PersonalHygiene = &v }},
	{Name: "punctuality", SheetRow: 10,
		Get: func(r *ObservationReport) *float64 { return r.Punctuality },
		Set: func(r *ObservationReport, v float64) { r.Punctuality = &v }},
	{Name: "aprons_sop", SheetRow: 11,
		Get: func(r *ObservationReport) *float64 { return r.ApronsSOP },
		Set: func(r *ObservationReport, v float64) { r.ApronsSOP = &v }},

	// Section B — Kitchen & Product (rows 14–20)
	{Name: "food_safety", SheetRow: 14,
		Get: func(r *ObservationReport) *float64 { return r.FoodSafety },
		Set: func(r *ObservationReport, v float64) { r.FoodSafety = &v }},
	{Name: "station_cleanliness", SheetRow: 15,
		Get: func(r *ObservationReport) *float64 { return r.StationCleanliness },
		Set: func(r *ObservationReport, v float64) { r.StationCleanliness = &v }},
	{Name: "equipment_handling", SheetRow: 16,
		Get: func(r *ObservationReport) *float64 { return r.EquipmentHandling },
		Set: func(r *ObservationReport, v float64) { r.EquipmentHandling = &v }},
	{Name: "ingredient_prep", SheetRow: 17,
		Get: func(r *ObservationReport) *float64 { return r.IngredientPrep },
		Set: func(r *ObservationReport, v float64) { r.IngredientPrep = &v }},
	{Name: "recipe_adherence", SheetRow: 18,
		Get: func(r *ObservationReport) *float64 { return r.RecipeAdherence },
		Set: func(r *ObservationReport, v float64) { r.RecipeAdherence = &v }},
	{Name: "product_quality", SheetRow: 19,
		Get: func(r *ObservationReport) *float64 { return r.ProductQuality },
		Set: func(r *ObservationReport, v float64) { r.ProductQuality = &v }},
	{Name: "wastage_control", SheetRow: 20,
		Get: func(r *ObservationReport) *float64 { return r.WastageControl },
		Set: func(r *ObservationReport, v float64) { r.WastageControl = &v }},

	// Section C — Counter & Service (rows 23–27)
	{Name: "pos_operation", SheetRow: 23,
		Get: func(r *ObservationReport) *float64 { return r.POSOperation },
		Set: func(r *ObservationReport, v float64) { r.POSOperation = &v }},
	{Name: "order_taking", SheetRow: 24,
		Get: func(r *ObservationReport) *float64 { return r.OrderTaking },
		Set: func(r *ObservationReport, v float64) { r.OrderTaking = &v }},
	{Name: "cash_handling", SheetRow: 25,
		Get: func(r *ObservationReport) *float64 { return r.CashHandling },
		Set: func(r *ObservationReport, v float64) { r.CashHandling = &v }},
	{Name: "customer_greeting", SheetRow: 26,
		Get: func(r *ObservationReport) *float64 { return r.CustomerGreeting },
		Set: func(r *ObservationReport, v float64) { r.CustomerGreeting = &v }},
	{Name: "complaint_handling", SheetRow: 27,
		Get: func(r *ObservationReport) *float64 { return r.ComplaintHandling },
		Set: func(r *ObservationReport, v float64) { r.ComplaintHandling = &v }},

	// Section D — Conduct & Teamwork (rows 30–36)
	{Name: "teamwork", SheetRow: 30,
		Get: func(r *ObservationReport) *float64 { return r.Teamwork },
		Set: func(r *ObservationReport, v float64) { r.Teamwork = &v }},
	{Name: "communication", SheetRow: 31,
		Get: func(r *ObservationReport) *float64 { return r.Communication },
		Set: func(r *ObservationReport, v float64) { r.Communication = &v }},
	{Name: "initiative", SheetRow: 32,
		Get: func(r *ObservationReport) *float64 { return r.Initiative },
		Set: func(r *ObservationReport, v float64) { r.Initiative = &v }},
	{Name: "work_speed", SheetRow: 33,
		Get: func(r *ObservationReport) *float64 { return r.WorkSpeed },
		Set: func(r *ObservationReport, v float64) { r.WorkSpeed = &v }},
	{Name: "attendance_reliability", SheetRow: 34,
		Get: func(r *ObservationReport) *float64 { return r.AttendanceReliability },
		Set: func(r *ObservationReport, v float64) { r.AttendanceReliability = &v }},
	{Name: "learning_attitude", SheetRow: 35,
		Get: func(r *ObservationReport) *float64 { return r.LearningAttitude },
		Set: func(r *ObservationReport, v float64) { r.LearningAttitude = &v }},
	{Name: "safety_awareness", SheetRow: 36,
		Get: func(r *ObservationReport) *float64 { return r.SafetyAwareness },
		Set: func(r *ObservationReport, v float64) { r.SafetyAwareness = &v }},
}

// RemarkFields never count toward scoring.
var RemarkFields = []RemarkField{
	{Name: "grooming_remarks", SheetRow: 12,
		Get: func(r *ObservationReport) *string { return r.GroomingRemarks },
		Set: func(r *ObservationReport, v string) { r.GroomingRemarks = &v }},
	{Name: "kitchen_remarks", SheetRow: 21,
		Get: func(r *ObservationReport) *string { return r.KitchenRemarks },
		Set: func(r *ObservationReport, v string) { r.KitchenRemarks = &v }},
	{Name: "service_remarks", SheetRow: 28,
		Get: func(r *ObservationReport) *string { return r.ServiceRemarks },
		Set: func(r *ObservationReport, v string) { r.ServiceRemarks = &v }},
	{Name: "conduct_remarks", SheetRow: 37,
		Get: func(r *ObservationReport) *string { return r.ConductRemarks },
		Set: func(r *ObservationReport, v string) { r.ConductRemarks = &v }},
	{Name: "general_remarks", SheetRow: 38,
		Get: func(r *ObservationReport) *string { return r.GeneralRemarks },
		Set: func(r *ObservationReport, v string) { r.GeneralRemarks = &v }},
}

// Granular rubric range on the weekly form.
const (
	ScoreMin = 1.0
	ScoreMax = 5.0
)
