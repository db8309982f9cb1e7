// file: internals/features/hr/employees/dto/employee_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"hrmku_backend/internals/constants"
	model "hrmku_backend/internals/features/hr/employees/model"
)

/* =========================================================
   CREATE / UPDATE (PUT carries the full payload, like CREATE)
   ========================================================= */

type EmployeeRequest struct {
	EN             string  `json:"employee_en" validate:"required,min=1,max=20"`
	Name           string  `json:"employee_name" validate:"required,min=1,max=120"`
	Contact        string  `json:"employee_contact" validate:"required,min=1,max=60"`
	EmployeeType   string  `json:"employee_type" validate:"required"`
	TrainingOutlet string  `json:"employee_training_outlet" validate:"omitempty,max=120"`
	Outlet         string  `json:"employee_outlet" validate:"omitempty,max=120"`
	ProbationStart *string `json:"employee_probation_start_date"`
	ProbationEnd   *string `json:"employee_probation_end_date"`
	Status         string  `json:"employee_status" validate:"omitempty"`
	TransitDate    *string `json:"employee_transit_date"`
	Remarks        *string `json:"employee_remarks"`

	// Category-specific
	Mentor          *string  `json:"employee_mentor" validate:"omitempty,max=120"`
	InternStart     *string  `json:"employee_intern_start_date"`
	InternEnd       *string  `json:"employee_intern_end_date"`
	TrainingForm    *string  `json:"employee_training_form" validate:"omitempty,max=60"`
	CertifiedShifts []string `json:"employee_certified_shifts"`

	ObservationReports []ObservationReportRequest `json:"employee_observation_reports"`
}

func (r *EmployeeRequest) Normalize() {
	r.EN = strings.TrimSpace(r.EN)
	r.Name = strings.TrimSpace(r.Name)
	r.Contact = strings.TrimSpace(r.Contact)
	r.EmployeeType = strings.TrimSpace(r.EmployeeType)
	r.TrainingOutlet = strings.TrimSpace(r.TrainingOutlet)
	r.Outlet = strings.TrimSpace(r.Outlet)
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		r.Status = constants.StatusInProgress
	}
}

// ValidateCategory applies the per-variant rules that validator tags cannot
// express: which extended field set the category requires, and the
// status/transit-date coupling. Returns field → problems, empty when valid.
func (r *EmployeeRequest) ValidateCategory() map[string][]string {
	problems := map[string][]string{}
	add := func(field, msg string) { problems[field] = append(problems[field], msg) }

	if !constants.IsValidEmployeeType(r.EmployeeType) {
		add("employee_type", fmt.Sprintf("must be one of %s", strings.Join(constants.AllEmployeeTypes, ", ")))
	}
	if !constants.IsValidEmployeeStatus(r.Status) {
		add("employee_status", fmt.Sprintf("must be one of %s", strings.Join(constants.AllEmployeeStatuses, ", ")))
	}

	switch {
	case r.EmployeeType == constants.TypeIntern:
		if r.Mentor == nil || strings.TrimSpace(*r.Mentor) == "" {
			add("employee_mentor", "required for interns")
		}
		if r.InternStart == nil {
			add("employee_intern_start_date", "required for interns")
		}
		if r.InternEnd == nil {
			add("employee_intern_end_date", "required for interns")
		}
	case constants.IsShiftCertifiedType(r.EmployeeType):
		if r.TrainingForm == nil || strings.TrimSpace(*r.TrainingForm) == "" {
			add("employee_training_form", "required for "+r.EmployeeType)
		}
	}

	// transit date only carries meaning once the employee left InProgress
	if r.TransitDate != nil && r.Status == constants.StatusInProgress {
		add("employee_transit_date", "not allowed while status is InProgress")
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// ToModel builds the aggregate. Embedded reports keep their submission
// order; derived scores are zeroed here and owned by the grading pipeline.
func (r *EmployeeRequest) ToModel() (*model.EmployeeModel, error) {
	emp := &model.EmployeeModel{
		EmployeeEN:             r.EN,
		EmployeeName:           r.Name,
		EmployeeContact:        r.Contact,
		EmployeeType:           r.EmployeeType,
		EmployeeTrainingOutlet: r.TrainingOutlet,
		EmployeeOutlet:         r.Outlet,
		EmployeeStatus:         r.Status,
	}

	var err error
	if emp.EmployeeProbationStart, err = parseDatePtr(r.ProbationStart, "employee_probation_start_date"); err != nil {
		return nil, err
	}
	if emp.EmployeeProbationEnd, err = parseDatePtr(r.ProbationEnd, "employee_probation_end_date"); err != nil {
		return nil, err
	}
	if emp.EmployeeTransitDate, err = parseDatePtr(r.TransitDate, "employee_transit_date"); err != nil {
		return nil, err
	}
	if emp.EmployeeInternStart, err = parseDatePtr(r.InternStart, "employee_intern_start_date"); err != nil {
		return nil, err
	}
	if emp.EmployeeInternEnd, err = parseDatePtr(r.InternEnd, "employee_intern_end_date"); err != nil {
		return nil, err
	}

	emp.EmployeeRemarks = trimToNil(r.Remarks)
	emp.EmployeeMentor = trimToNil(r.Mentor)
	emp.EmployeeTrainingForm = trimToNil(r.TrainingForm)
	if len(r.CertifiedShifts) > 0 {
		emp.EmployeeCertifiedShifts = pq.StringArray(r.CertifiedShifts)
	}

	for i := range r.ObservationReports {
		report, err := r.ObservationReports[i].ToReport()
		if err != nil {
			return nil, fmt.Errorf("employee_observation_reports[%d]: %w", i, err)
		}
		emp.EmployeeObservationReports = append(emp.EmployeeObservationReports, report)
	}
	return emp, nil
}

// ApplyTo overwrites an existing row with the request (PUT semantics),
// keeping identity, version and the stored report list unless the payload
// carries reports of its own.
func (r *EmployeeRequest) ApplyTo(emp *model.EmployeeModel) error {
	fresh, err := r.ToModel()
	if err != nil {
		return err
	}
	fresh.EmployeeID = emp.EmployeeID
	fresh.EmployeeVersion = emp.EmployeeVersion
	fresh.EmployeeCreatedAt = emp.EmployeeCreatedAt
	if r.ObservationReports == nil {
		fresh.EmployeeObservationReports = emp.EmployeeObservationReports
	}
	*emp = *fresh
	return nil
}

func parseDatePtr(p *string, field string) (*time.Time, error) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*p))
	if err != nil {
		return nil, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", field, *p)
	}
	return &t, nil
}

func trimToNil(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   SUMMARY
   ========================================================= */

// SummaryRow is one employee category's movement within the filter window
// (new trainees started, still in progress, passed out, terminated).
type SummaryRow struct {
	Category   string `json:"category"`
	DateRange  string `json:"date_range"`
	NewTrainee int    `json:"new_trainee"`
	InProgress int    `json:"in_progress"`
	Passed     int    `json:"passed"`
	Terminated int    `json:"terminated"`
}
