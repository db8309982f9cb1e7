// file: internals/features/hr/employees/service/grading_service.go
package service

import (
	"math"

	model "hrmku_backend/internals/features/hr/employees/model"
)

/* ========================================================
   Grading engine
   Two-phase pipeline: per-report score first, then the
   employee mean over those scores. Both layers round to
   2 decimals independently (the historical forms were
   published that way, and the stored values must match
   what the evaluators see).
======================================================== */

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeReportScore returns the mean of the populated score-class fields of
// one report, rounded to 2 decimals, together with how many fields were
// populated. A report with no populated score fields scores 0 with count 0;
// callers use the count to tell "scored 0" apart from "not evaluated".
func ComputeReportScore(r *model.ObservationReport) (float64, int) {
	sum := 0.0
	n := 0
	for _, f := range model.ScoreFields {
		if v := f.Get(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return Round2(sum / float64(n)), n
}

// ComputeEmployeeGrade returns the mean of the reports' OverallScore values,
// rounded to 2 decimals. Assumes every report already carries a current
// OverallScore (see RecomputeEmployee). Empty list grades 0.
func ComputeEmployeeGrade(reports []model.ObservationReport) float64 {
	if len(reports) == 0 {
		return 0
	}
	sum := 0.0
	for i := range reports {
		sum += reports[i].OverallScore
	}
	return Round2(sum / float64(len(reports)))
}

// RecomputeEmployee refreshes every report's OverallScore and then the
// employee's overall grading score, strictly in that order. Runs on every
// create, update and report append before anything is persisted.
func RecomputeEmployee(e *model.EmployeeModel) {
	for i := range e.EmployeeObservationReports {
		score, _ := ComputeReportScore(&e.EmployeeObservationReports[i])
		e.EmployeeObservationReports[i].OverallScore = score
	}
	e.EmployeeOverallGrading = ComputeEmployeeGrade(e.EmployeeObservationReports)
}
