// file: internals/features/hr/employees/service/employee_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "hrmku_backend/internals/features/hr/employees/model"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrVersionConflict: another writer bumped employee_version between our
	// read and our write. Callers reload and retry.
	ErrVersionConflict = errors.New("employee was modified concurrently")
)

// Two concurrent appends to the same employee are the classic lost-update
// hazard on an embedded list; bounded reload-retry keeps the grading
// invariant without holding a transaction across the recompute.
const maxVersionRetries = 3

func FindEmployeeByID(db *gorm.DB, id uuid.UUID) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := db.Where("employee_id = ?", id).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func FindEmployeeByEN(db *gorm.DB, en string) (*model.EmployeeModel, error) {
	var emp model.EmployeeModel
	if err := db.Where("employee_en = ?", en).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// SaveGuarded writes the full employee row iff employee_version still equals
// the version the caller read; on success the stored version is bumped and
// the in-memory model updated to match.
func SaveGuarded(db *gorm.DB, emp *model.EmployeeModel) error {
	readVersion := emp.EmployeeVersion
	emp.EmployeeVersion = readVersion + 1

	res := db.Model(&model.EmployeeModel{}).
		Where("employee_id = ? AND employee_version = ?", emp.EmployeeID, readVersion).
		Select("*").
		Omit("employee_id", "employee_created_at").
		Updates(emp)
	if res.Error != nil {
		emp.EmployeeVersion = readVersion
		return res.Error
	}
	if res.RowsAffected == 0 {
		emp.EmployeeVersion = readVersion
		return ErrVersionConflict
	}
	return nil
}

// MutateEmployee loads, mutates, regrades and guardedly saves one employee,
// retrying the whole cycle on version conflicts so the mutation is always
// applied to a fresh read.
func MutateEmployee(db *gorm.DB, employeeID uuid.UUID, mutate func(*model.EmployeeModel) error) (*model.EmployeeModel, error) {
	var lastErr error
	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		emp, err := FindEmployeeByID(db, employeeID)
		if err != nil {
			return nil, err
		}
		if err := mutate(emp); err != nil {
			return nil, err
		}
		RecomputeEmployee(emp)

		if err := SaveGuarded(db, emp); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return emp, nil
	}
	return nil, lastErr
}

// AppendReports appends reports to an employee's list and reruns the grading
// pipeline (per-report score, then employee grade) before persisting,
// retrying on version conflicts. Returns the persisted state.
func AppendReports(db *gorm.DB, employeeID uuid.UUID, reports []model.ObservationReport) (*model.EmployeeModel, error) {
	return MutateEmployee(db, employeeID, func(e *model.EmployeeModel) error {
		e.EmployeeObservationReports = append(e.EmployeeObservationReports, reports...)
		return nil
	})
}
