package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "hrmku_backend/internals/features/hr/employees/model"
)

func f(v float64) *float64 { return &v }

func TestComputeReportScore_MeanOfPopulatedFieldsOnly(t *testing.T) {
	// 3, 5, nil, 4 → (3+5+4)/3 = 4.00
	r := model.ObservationReport{
		WeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Grooming:      f(3),
		ApronsSOP:     f(5),
		FoodSafety:    nil,
		Teamwork:      f(4),
	}

	score, n := ComputeReportScore(&r)
	assert.Equal(t, 3, n)
	assert.Equal(t, 4.00, score)
}

func TestComputeReportScore_RemarksAndMetaNeverCount(t *testing.T) {
	remark := "late twice this week"
	r := model.ObservationReport{
		WeekStartDate:   time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		TrainingCentre:  "HQ Training Centre",
		Evaluator:       "A. Tan",
		Punctuality:     f(2),
		GroomingRemarks: &remark,
		GeneralRemarks:  &remark,
	}

	score, n := ComputeReportScore(&r)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2.00, score)
}

func TestComputeReportScore_RoundsToTwoDecimals(t *testing.T) {
	// (4+4+5)/3 = 4.333... → 4.33
	r := model.ObservationReport{
		Grooming:   f(4),
		FoodSafety: f(4),
		Teamwork:   f(5),
	}
	score, _ := ComputeReportScore(&r)
	assert.Equal(t, 4.33, score)
}

func TestComputeReportScore_NoPopulatedFields(t *testing.T) {
	r := model.ObservationReport{
		WeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	score, n := ComputeReportScore(&r)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, score)
}

func TestComputeReportScore_OrderIndependentAndIdempotent(t *testing.T) {
	a := model.ObservationReport{Grooming: f(3), Teamwork: f(5), CashHandling: f(4)}
	b := model.ObservationReport{CashHandling: f(4), Grooming: f(3), Teamwork: f(5)}

	s1, n1 := ComputeReportScore(&a)
	s2, n2 := ComputeReportScore(&b)
	assert.Equal(t, s1, s2)
	assert.Equal(t, n1, n2)

	// pure: re-running on unchanged input is bit-identical
	s3, _ := ComputeReportScore(&a)
	assert.Equal(t, s1, s3)
}

func TestComputeEmployeeGrade(t *testing.T) {
	reports := []model.ObservationReport{
		{OverallScore: 4.00},
		{OverallScore: 3.00},
		{OverallScore: 5.00},
	}
	assert.Equal(t, 4.00, ComputeEmployeeGrade(reports))

	g1 := ComputeEmployeeGrade(reports)
	g2 := ComputeEmployeeGrade(reports)
	assert.Equal(t, g1, g2)
}

func TestComputeEmployeeGrade_EmptyListIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ComputeEmployeeGrade(nil))
	assert.Equal(t, 0.0, ComputeEmployeeGrade([]model.ObservationReport{}))
}

func TestRecomputeEmployee_ScoresAllReportsBeforeGrading(t *testing.T) {
	emp := model.EmployeeModel{
		EmployeeEN: "EN-1001",
		EmployeeObservationReports: []model.ObservationReport{
			// stale OverallScore values must be overwritten before aggregation
			{Grooming: f(4), Teamwork: f(4), OverallScore: 99},
			{Grooming: f(2), OverallScore: 99},
		},
	}

	RecomputeEmployee(&emp)

	assert.Equal(t, 4.00, emp.EmployeeObservationReports[0].OverallScore)
	assert.Equal(t, 2.00, emp.EmployeeObservationReports[1].OverallScore)
	assert.Equal(t, 3.00, emp.EmployeeOverallGrading)
}

// Full-pipeline scenario: an intern with one fully populated report and one
// half-populated report; each report's score is the mean of only its own
// populated fields, and the grade is the mean of the two report scores.
func TestRecomputeEmployee_InternScenario(t *testing.T) {
	full := model.ObservationReport{
		WeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	// every score field populated with distinct values cycling 1..5
	for i, sf := range model.ScoreFields {
		sf.Set(&full, float64(i%5)+1)
	}

	partial := model.ObservationReport{
		WeekStartDate: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	half := len(model.ScoreFields) / 2
	partialSum := 0.0
	for i := 0; i < half; i++ {
		model.ScoreFields[i].Set(&partial, 4)
		partialSum += 4
	}

	emp := model.EmployeeModel{
		EmployeeEN:                 "EN-2001",
		EmployeeType:               "Intern",
		EmployeeObservationReports: []model.ObservationReport{full, partial},
	}
	RecomputeEmployee(&emp)

	fullSum := 0.0
	for i := range model.ScoreFields {
		fullSum += float64(i%5) + 1
	}
	wantFull := Round2(fullSum / float64(len(model.ScoreFields)))
	wantPartial := Round2(partialSum / float64(half))

	require.Equal(t, wantFull, emp.EmployeeObservationReports[0].OverallScore)
	require.Equal(t, wantPartial, emp.EmployeeObservationReports[1].OverallScore)
	assert.Equal(t, Round2((wantFull+wantPartial)/2), emp.EmployeeOverallGrading)
}
