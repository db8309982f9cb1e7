// file: internals/features/hr/employees/service/upload_service.go
package service

import (
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "hrmku_backend/internals/features/hr/employees/model"
	ingest "hrmku_backend/internals/features/hr/ingest"
)

type FileFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

type SkippedColumn struct {
	FileName string `json:"file_name"`
	Column   int    `json:"column"`
	EN       string `json:"en,omitempty"`
	Reason   string `json:"reason"`
}

// UploadSummary is what the caller gets back from a bulk upload: enough to
// tell which files and which evaluee columns did not make it.
type UploadSummary struct {
	FilesProcessed int             `json:"files_processed"`
	FilesFailed    []FileFailure   `json:"files_failed,omitempty"`
	ReportsAdded   int             `json:"reports_added"`
	SkippedColumns []SkippedColumn `json:"skipped_columns,omitempty"`
}

// ProcessUpload ingests a batch of weekly workbooks. Files are independent:
// a failed file (unreadable, bad week date) is recorded and the rest still
// process. Within a file, reports are grouped per employee and each
// employee's list is appended + regraded in one guarded write, so a single
// report is never half-persisted.
func ProcessUpload(db *gorm.DB, files []*multipart.FileHeader) UploadSummary {
	summary := UploadSummary{}

	resolve := func(en string) (uuid.UUID, bool) {
		emp, err := FindEmployeeByEN(db, en)
		if err != nil {
			return uuid.Nil, false
		}
		return emp.EmployeeID, true
	}

	for _, fh := range files {
		result, err := mapWorkbook(fh, resolve)
		if err != nil {
			summary.FilesFailed = append(summary.FilesFailed, FileFailure{FileName: fh.Filename, Error: err.Error()})
			continue
		}

		for _, skip := range result.Skips {
			summary.SkippedColumns = append(summary.SkippedColumns, SkippedColumn{
				FileName: fh.Filename,
				Column:   skip.Column,
				EN:       skip.EN,
				Reason:   skip.Reason,
			})
		}

		// group per employee, preserving column order within the sheet
		order := make([]uuid.UUID, 0, len(result.Reports))
		grouped := make(map[uuid.UUID][]model.ObservationReport)
		for _, mr := range result.Reports {
			if _, seen := grouped[mr.EmployeeID]; !seen {
				order = append(order, mr.EmployeeID)
			}
			grouped[mr.EmployeeID] = append(grouped[mr.EmployeeID], mr.Report)
		}

		fileFailed := false
		for _, id := range order {
			reports := grouped[id]
			if _, err := AppendReports(db, id, reports); err != nil {
				summary.FilesFailed = append(summary.FilesFailed, FileFailure{
					FileName: fh.Filename,
					Error:    fmt.Sprintf("append reports for employee %s: %v", id, err),
				})
				fileFailed = true
				continue
			}
			summary.ReportsAdded += len(reports)
		}
		if !fileFailed {
			summary.FilesProcessed++
		}
	}
	return summary
}

func mapWorkbook(fh *multipart.FileHeader, resolve ingest.EmployeeResolver) (ingest.MapResult, error) {
	f, err := fh.Open()
	if err != nil {
		return ingest.MapResult{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	grid, err := ingest.DecodeWorkbook(f)
	if err != nil {
		return ingest.MapResult{}, err
	}
	return ingest.MapSheetToReports(grid, resolve)
}
