// file: internals/features/hr/ingest/mapper.go
package ingest

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	model "hrmku_backend/internals/features/hr/employees/model"
)

// EmployeeResolver resolves an employee number to the owning employee's ID.
type EmployeeResolver func(en string) (uuid.UUID, bool)

// MappedReport is one evaluee column turned into a report, bound to the
// employee it belongs to. OverallScore is left at the 0 placeholder; the
// grading pipeline owns that value.
type MappedReport struct {
	EmployeeID uuid.UUID
	EN         string
	Report     model.ObservationReport
}

// ColumnSkip records why one evaluee column was not mapped. Skips are
// diagnostics, never fatal to the sheet.
type ColumnSkip struct {
	Column int    `json:"column"`
	EN     string `json:"en,omitempty"`
	Reason string `json:"reason"`
}

type MapResult struct {
	Reports []MappedReport
	Skips   []ColumnSkip
}

// MapSheetToReports walks the evaluee columns of one decoded sheet and
// builds a report per resolvable column. The shared metadata block is read
// once and stamped onto every report.
//
// Failure semantics: an unparseable week-start date fails the whole sheet
// (returned error); a blank EN slot is skipped silently; an unknown EN or a
// malformed score cell skips that column with a diagnostic.
func MapSheetToReports(g Grid, resolve EmployeeResolver) (MapResult, error) {
	weekStart, err := ParseCellDate(g.Cell(WeekStartDateRow, MetaValueCol))
	if err != nil {
		return MapResult{}, fmt.Errorf("week start date: %w", err)
	}
	trainingCentre := g.Cell(TrainingCentreRow, MetaValueCol)
	evaluator := g.Cell(EvaluatorRow, MetaValueCol)

	var out MapResult
	for col := FirstEvalueeCol; col <= LastEvalueeCol; col++ {
		en := g.Cell(ENRow, col)
		if en == "" {
			continue // unused slot on the form
		}

		employeeID, ok := resolve(en)
		if !ok {
			out.Skips = append(out.Skips, ColumnSkip{Column: col, EN: en, Reason: "employee number not found"})
			continue
		}

		report := model.ObservationReport{
			WeekStartDate:  weekStart,
			TrainingCentre: trainingCentre,
			Evaluator:      evaluator,
		}
		if reason := fillColumn(&report, g, col); reason != "" {
			out.Skips = append(out.Skips, ColumnSkip{Column: col, EN: en, Reason: reason})
			continue
		}

		out.Reports = append(out.Reports, MappedReport{EmployeeID: employeeID, EN: en, Report: report})
	}
	return out, nil
}

// fillColumn reads one evaluee's criterion cells into the report. Returns a
// non-empty skip reason on the first malformed cell, leaving the caller to
// abandon the half-built report.
func fillColumn(r *model.ObservationReport, g Grid, col int) string {
	for _, sf := range model.ScoreFields {
		raw := g.Cell(sf.SheetRow, col)
		if raw == "" {
			continue // not evaluated this week
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Sprintf("unparseable %s cell %q", sf.Name, raw)
		}
		if v < model.ScoreMin || v > model.ScoreMax {
			return fmt.Sprintf("%s score %v out of range %v–%v", sf.Name, v, model.ScoreMin, model.ScoreMax)
		}
		sf.Set(r, v)
	}

	for _, rf := range model.RemarkFields {
		if raw := g.Cell(rf.SheetRow, col); raw != "" {
			rf.Set(r, raw)
		}
	}
	return ""
}
