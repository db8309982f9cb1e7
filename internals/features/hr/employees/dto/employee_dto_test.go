package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrmku_backend/internals/constants"
	model "hrmku_backend/internals/features/hr/employees/model"
)

func ptr[T any](v T) *T { return &v }

func validIntern() EmployeeRequest {
	return EmployeeRequest{
		EN:           "EN-2001",
		Name:         "Siti Rahman",
		Contact:      "+65 8123 4567",
		EmployeeType: constants.TypeIntern,
		Mentor:       ptr("J. Lim"),
		InternStart:  ptr("2024-01-08"),
		InternEnd:    ptr("2024-07-08"),
	}
}

func TestNormalize_TrimsAndDefaultsStatus(t *testing.T) {
	req := EmployeeRequest{
		EN:           "  EN-2001 ",
		Name:         " Siti Rahman ",
		Contact:      " 81234567 ",
		EmployeeType: " Intern ",
	}
	req.Normalize()

	assert.Equal(t, "EN-2001", req.EN)
	assert.Equal(t, "Siti Rahman", req.Name)
	assert.Equal(t, constants.TypeIntern, req.EmployeeType)
	assert.Equal(t, constants.StatusInProgress, req.Status)
}

func TestValidateCategory_ValidIntern(t *testing.T) {
	req := validIntern()
	req.Normalize()
	assert.Nil(t, req.ValidateCategory())
}

func TestValidateCategory_InternNeedsMentorAndDates(t *testing.T) {
	req := validIntern()
	req.Mentor = ptr("   ")
	req.InternStart = nil
	req.InternEnd = nil
	req.Normalize()

	problems := req.ValidateCategory()
	require.NotNil(t, problems)
	assert.Contains(t, problems, "employee_mentor")
	assert.Contains(t, problems, "employee_intern_start_date")
	assert.Contains(t, problems, "employee_intern_end_date")
}

func TestValidateCategory_ShiftCertifiedNeedsTrainingForm(t *testing.T) {
	for _, empType := range constants.ShiftCertifiedTypes {
		req := EmployeeRequest{
			EN:           "EN-3001",
			Name:         "Ben Ong",
			Contact:      "81234567",
			EmployeeType: empType,
		}
		req.Normalize()

		problems := req.ValidateCategory()
		require.NotNil(t, problems, "type %s", empType)
		assert.Contains(t, problems, "employee_training_form", "type %s", empType)
	}

	// MasterCrew carries no training-form cluster
	req := EmployeeRequest{
		EN:           "EN-3002",
		Name:         "Ben Ong",
		Contact:      "81234567",
		EmployeeType: constants.TypeMasterCrew,
	}
	req.Normalize()
	assert.Nil(t, req.ValidateCategory())
}

func TestValidateCategory_UnknownTypeAndStatus(t *testing.T) {
	req := validIntern()
	req.EmployeeType = "Contractor"
	req.Status = "Paused"

	problems := req.ValidateCategory()
	require.NotNil(t, problems)
	assert.Contains(t, problems, "employee_type")
	assert.Contains(t, problems, "employee_status")
}

func TestValidateCategory_TransitDateRequiresFinalStatus(t *testing.T) {
	req := validIntern()
	req.TransitDate = ptr("2024-06-30")
	req.Normalize() // status defaults to InProgress

	problems := req.ValidateCategory()
	require.NotNil(t, problems)
	assert.Contains(t, problems, "employee_transit_date")

	req.Status = constants.StatusPassed
	assert.Nil(t, req.ValidateCategory())
}

func TestToModel_ParsesDatesAndShifts(t *testing.T) {
	req := EmployeeRequest{
		EN:              "EN-4001",
		Name:            "Mei Chen",
		Contact:         "81234567",
		EmployeeType:    constants.TypeSeniorCrew,
		ProbationStart:  ptr("2024-02-01"),
		TrainingForm:    ptr("TF-2024-11"),
		CertifiedShifts: []string{"opening", "closing"},
		ObservationReports: []ObservationReportRequest{
			{WeekStartDate: "2024-02-05", Grooming: ptr(4.0)},
		},
	}
	req.Normalize()

	emp, err := req.ToModel()
	require.NoError(t, err)

	require.NotNil(t, emp.EmployeeProbationStart)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *emp.EmployeeProbationStart)
	assert.EqualValues(t, []string{"opening", "closing"}, emp.EmployeeCertifiedShifts)
	require.Len(t, emp.EmployeeObservationReports, 1)
	assert.Equal(t, 4.0, *emp.EmployeeObservationReports[0].Grooming)
	assert.Equal(t, 0.0, emp.EmployeeObservationReports[0].OverallScore)
	assert.Equal(t, 0.0, emp.EmployeeOverallGrading)
}

func TestToModel_RejectsBadDate(t *testing.T) {
	req := validIntern()
	req.ProbationStart = ptr("01-02-2024") // base dates are strict ISO
	req.Normalize()

	_, err := req.ToModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee_probation_start_date")
}

func TestApplyTo_KeepsIdentityAndStoredReports(t *testing.T) {
	existing := model.EmployeeModel{
		EmployeeID:      uuid.New(),
		EmployeeEN:      "EN-2001",
		EmployeeName:    "Old Name",
		EmployeeVersion: 7,
		EmployeeObservationReports: []model.ObservationReport{
			{WeekStartDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), OverallScore: 4.5},
		},
		EmployeeCreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	wantID, wantCreated := existing.EmployeeID, existing.EmployeeCreatedAt

	req := validIntern()
	req.Name = "New Name"
	req.Normalize()
	require.NoError(t, req.ApplyTo(&existing))

	assert.Equal(t, wantID, existing.EmployeeID)
	assert.Equal(t, 7, existing.EmployeeVersion)
	assert.Equal(t, wantCreated, existing.EmployeeCreatedAt)
	assert.Equal(t, "New Name", existing.EmployeeName)
	// payload carried no reports: stored list survives
	require.Len(t, existing.EmployeeObservationReports, 1)
	assert.Equal(t, 4.5, existing.EmployeeObservationReports[0].OverallScore)
}

func TestApplyTo_PayloadReportsReplaceStoredList(t *testing.T) {
	existing := model.EmployeeModel{
		EmployeeID: uuid.New(),
		EmployeeObservationReports: []model.ObservationReport{
			{WeekStartDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
			{WeekStartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		},
	}

	req := validIntern()
	req.ObservationReports = []ObservationReportRequest{
		{WeekStartDate: "2024-03-04", Teamwork: ptr(5.0)},
	}
	req.Normalize()
	require.NoError(t, req.ApplyTo(&existing))

	require.Len(t, existing.EmployeeObservationReports, 1)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), existing.EmployeeObservationReports[0].WeekStartDate)
}
