package ingest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "hrmku_backend/internals/features/hr/employees/model"
)

// newSheet builds an empty weekly form grid with the shared metadata block
// filled in.
func newSheet(weekStart string) Grid {
	g := make(Grid, 40)
	for i := range g {
		g[i] = make([]string, LastEvalueeCol+1)
	}
	g[WeekStartDateRow][MetaValueCol] = weekStart
	g[TrainingCentreRow][MetaValueCol] = "HQ Training Centre"
	g[EvaluatorRow][MetaValueCol] = "A. Tan"
	return g
}

func staticResolver(known map[string]uuid.UUID) EmployeeResolver {
	return func(en string) (uuid.UUID, bool) {
		id, ok := known[en]
		return id, ok
	}
}

func TestMapSheetToReports_MapsColumnsToReports(t *testing.T) {
	g := newSheet("15-03-2024")

	idA, idB := uuid.New(), uuid.New()
	g[ENRow][2] = "EN-1001"
	g[ENRow][3] = "EN-1002"

	// column 2: two criteria + one section remark
	g[7][2] = "4"   // grooming
	g[30][2] = "5"  // teamwork
	g[12][2] = "tidy, on time"
	// column 3: one criterion
	g[14][3] = "3" // food_safety

	result, err := MapSheetToReports(g, staticResolver(map[string]uuid.UUID{
		"EN-1001": idA,
		"EN-1002": idB,
	}))
	require.NoError(t, err)
	require.Len(t, result.Reports, 2)
	assert.Empty(t, result.Skips)

	first := result.Reports[0]
	assert.Equal(t, idA, first.EmployeeID)
	assert.Equal(t, "EN-1001", first.EN)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), first.Report.WeekStartDate)
	assert.Equal(t, "HQ Training Centre", first.Report.TrainingCentre)
	assert.Equal(t, "A. Tan", first.Report.Evaluator)
	require.NotNil(t, first.Report.Grooming)
	assert.Equal(t, 4.0, *first.Report.Grooming)
	require.NotNil(t, first.Report.Teamwork)
	assert.Equal(t, 5.0, *first.Report.Teamwork)
	require.NotNil(t, first.Report.GroomingRemarks)
	assert.Equal(t, "tidy, on time", *first.Report.GroomingRemarks)
	assert.Nil(t, first.Report.FoodSafety)
	assert.Equal(t, 0.0, first.Report.OverallScore, "placeholder until the grading pipeline runs")

	second := result.Reports[1]
	assert.Equal(t, idB, second.EmployeeID)
	require.NotNil(t, second.Report.FoodSafety)
	assert.Equal(t, 3.0, *second.Report.FoodSafety)
}

func TestMapSheetToReports_UnknownENSkipsColumnOnly(t *testing.T) {
	g := newSheet("2024-03-15")

	known := uuid.New()
	g[ENRow][2] = "EN-1001"
	g[ENRow][3] = "EN-9999" // nobody by that number
	g[ENRow][4] = "EN-1001"
	g[7][2] = "4"
	g[7][3] = "4"
	g[7][4] = "4"

	result, err := MapSheetToReports(g, staticResolver(map[string]uuid.UUID{"EN-1001": known}))
	require.NoError(t, err)

	assert.Len(t, result.Reports, 2)
	require.Len(t, result.Skips, 1)
	assert.Equal(t, 3, result.Skips[0].Column)
	assert.Equal(t, "EN-9999", result.Skips[0].EN)
	assert.Contains(t, result.Skips[0].Reason, "not found")
}

func TestMapSheetToReports_BlankENSlotsAreSilent(t *testing.T) {
	g := newSheet("2024-03-15")
	g[ENRow][2] = "EN-1001"
	g[7][2] = "4"
	// columns 3..9 left blank: unused form slots

	result, err := MapSheetToReports(g, staticResolver(map[string]uuid.UUID{"EN-1001": uuid.New()}))
	require.NoError(t, err)
	assert.Len(t, result.Reports, 1)
	assert.Empty(t, result.Skips)
}

func TestMapSheetToReports_MalformedScoreCellSkipsColumn(t *testing.T) {
	g := newSheet("2024-03-15")
	id := uuid.New()
	g[ENRow][2] = "EN-1001"
	g[ENRow][3] = "EN-1002"
	g[7][2] = "n/a" // not a number
	g[7][3] = "9"   // out of the 1–5 range
	g[ENRow][4] = "EN-1003"
	g[7][4] = "5"

	result, err := MapSheetToReports(g, staticResolver(map[string]uuid.UUID{
		"EN-1001": id, "EN-1002": id, "EN-1003": id,
	}))
	require.NoError(t, err)

	assert.Len(t, result.Reports, 1)
	require.Len(t, result.Skips, 2)
	assert.Contains(t, result.Skips[0].Reason, "grooming")
	assert.Contains(t, result.Skips[1].Reason, "out of range")
}

func TestMapSheetToReports_BadWeekDateFailsWholeSheet(t *testing.T) {
	g := newSheet("sometime in march")
	g[ENRow][2] = "EN-1001"
	g[7][2] = "4"

	_, err := MapSheetToReports(g, staticResolver(map[string]uuid.UUID{"EN-1001": uuid.New()}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "week start date")
}

func TestGridCell_OutOfBoundsReadsEmpty(t *testing.T) {
	g := Grid{{"a", "b"}}
	assert.Equal(t, "a", g.Cell(0, 0))
	assert.Equal(t, "", g.Cell(0, 5))
	assert.Equal(t, "", g.Cell(9, 0))
	assert.Equal(t, "", g.Cell(-1, -1))
}

// The catalog rows and the evaluee block must not collide: every score and
// remark row has to sit below the EN row.
func TestLayout_CatalogRowsBelowENRow(t *testing.T) {
	for _, sf := range model.ScoreFields {
		assert.Greater(t, sf.SheetRow, ENRow, "score field %s", sf.Name)
	}
	for _, rf := range model.RemarkFields {
		assert.Greater(t, rf.SheetRow, ENRow, "remark field %s", rf.Name)
	}
}
