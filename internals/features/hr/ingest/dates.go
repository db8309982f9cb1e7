// file: internals/features/hr/ingest/dates.go
package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layouts the week-start cell is accepted in. Separators disambiguate:
// dashes with a 4-digit tail are day-first, slashes are month-first.
var dateLayouts = []string{
	"2006-01-02", // ISO
	"02-01-2006", // DD-MM-YYYY (the printed form's convention)
	"01/02/2006", // MM/DD/YYYY
	"1/2/2006",   // MM/DD/YYYY without zero padding
}

// ParseCellDate normalizes a raw date cell to a calendar date at UTC
// start-of-day. Besides the text layouts it accepts Excel numeric date
// serials, which excelize surfaces for unformatted date cells.
func ParseCellDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("date cell is empty")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return startOfDay(t), nil
		}
	}

	// Excel serial: days since 1899-12-30 (the 1900 date system).
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		t := epoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
		return startOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (accepted: YYYY-MM-DD, DD-MM-YYYY, MM/DD/YYYY)", s)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
