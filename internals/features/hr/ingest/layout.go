// file: internals/features/hr/ingest/layout.go
package ingest

// Fixed coordinates of the weekly evaluation form (zero-indexed). The
// per-criterion rows live in the rubric catalog
// (employees/model.ScoreFields / RemarkFields); everything positional that
// is not per-criterion is declared here, so a form revision is an edit to
// these tables only.
//
// Sheet shape: a header block with the shared metadata for the week, one row
// of employee numbers (one evaluee per column), then the criterion rows at
// the same columns.
const (
	// Shared metadata block: labels in column 0, values in column 1.
	MetaValueCol      = 1
	WeekStartDateRow  = 1
	TrainingCentreRow = 2
	EvaluatorRow      = 3

	// Evaluee block: ENs across one row, eight slots per sheet.
	ENRow           = 5
	FirstEvalueeCol = 2
	LastEvalueeCol  = 9
)
