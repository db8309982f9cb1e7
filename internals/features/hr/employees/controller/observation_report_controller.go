// file: internals/features/hr/employees/controller/observation_report_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hrmku_backend/internals/features/hr/employees/dto"
	model "hrmku_backend/internals/features/hr/employees/model"
	service "hrmku_backend/internals/features/hr/employees/service"
	helper "hrmku_backend/internals/helpers"
)

type ObservationReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewObservationReportController(db *gorm.DB) *ObservationReportController {
	return &ObservationReportController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /employees/:id/observations
func (ctl *ObservationReportController) List(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee_id is not valid")
	}

	emp, err := service.FindEmployeeByID(ctl.DB.WithContext(c.UserContext()), id)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return helper.Error(c, http.StatusNotFound, "Employee not found")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", emp.EmployeeObservationReports)
}

// POST /employees/:id/observations
func (ctl *ObservationReportController) Add(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee_id is not valid")
	}

	var req dto.ObservationReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	report, err := req.ToReport()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.UserContext())
	emp, err := service.AppendReports(db, id, []model.ObservationReport{report})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return helper.Error(c, http.StatusNotFound, "Employee not found")
		case errors.Is(err, service.ErrVersionConflict):
			return helper.Error(c, http.StatusConflict, "Employee was modified concurrently, please retry")
		default:
			return helper.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Observation report added", emp)
}

// POST /employees/observation-reports/upload
// Multipart field "files": one or more weekly evaluation workbooks.
func (ctl *ObservationReportController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "Expected multipart form upload")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return helper.Error(c, http.StatusBadRequest, "No files uploaded")
	}

	summary := service.ProcessUpload(ctl.DB.WithContext(c.UserContext()), files)

	msg := "Observation reports uploaded"
	if summary.ReportsAdded == 0 {
		msg = "No observation reports could be processed"
	}
	return helper.Success(c, msg, summary)
}
