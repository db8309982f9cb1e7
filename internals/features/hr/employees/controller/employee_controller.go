// file: internals/features/hr/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrmku_backend/internals/constants"
	dto "hrmku_backend/internals/features/hr/employees/dto"
	model "hrmku_backend/internals/features/hr/employees/model"
	service "hrmku_backend/internals/features/hr/employees/service"
	helper "hrmku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */

type EmployeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /employees
// Query (optional): q, employee_type, status, page, per_page
func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	var (
		q       = strings.TrimSpace(c.Query("q"))
		empType = strings.TrimSpace(c.Query("employee_type"))
		status  = strings.TrimSpace(c.Query("status"))
		paging  = helper.ResolvePaging(c, 20, 200)
	)

	qry := ctl.DB.WithContext(c.UserContext()).Model(&model.EmployeeModel{})
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		qry = qry.Where("(LOWER(employee_name) LIKE ? OR LOWER(employee_en) LIKE ?)", like, like)
	}
	if empType != "" {
		qry = qry.Where("employee_type = ?", empType)
	}
	if status != "" {
		qry = qry.Where("employee_status = ?", status)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.EmployeeModel
	if err := qry.
		Order("employee_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"data":       rows,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit),
	})
}

// GET /employees/:id
func (ctl *EmployeeController) GetByID(c *fiber.Ctx) error {
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
	return helper.Success(c, "OK", emp)
}

// POST /employees
func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if problems := req.ValidateCategory(); problems != nil {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", problems)
	}

	emp, err := req.ToModel()
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, err.Error())
	}

	// derived scores before the first write
	service.RecomputeEmployee(emp)

	if err := ctl.DB.WithContext(c.UserContext()).Create(emp).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, http.StatusConflict, "employee_en already exists")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Employee created", emp)
}

// PUT /employees/:id (full update; reports untouched unless the payload
// carries its own list)
func (ctl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee_id is not valid")
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()

	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if problems := req.ValidateCategory(); problems != nil {
		return helper.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", problems)
	}

	db := ctl.DB.WithContext(c.UserContext())
	emp, err := service.MutateEmployee(db, id, func(e *model.EmployeeModel) error {
		return req.ApplyTo(e)
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			return helper.Error(c, http.StatusNotFound, "Employee not found")
		case errors.Is(err, service.ErrVersionConflict):
			return helper.Error(c, http.StatusConflict, "Employee was modified concurrently, please retry")
		case isDuplicateKey(err):
			return helper.Error(c, http.StatusConflict, "employee_en already exists")
		default:
			return helper.Error(c, http.StatusBadRequest, err.Error())
		}
	}
	return helper.Success(c, "Employee updated", emp)
}

// DELETE /employees/:id (hard delete; embedded reports go with the row)
func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "employee_id is not valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("employee_id = ?", id).
		Delete(&model.EmployeeModel{})
	if res.Error != nil {
		return helper.Error(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, http.StatusNotFound, "Employee not found")
	}
	return helper.Success(c, "Employee deleted", nil)
}

// GET /employees/summary?start_date=&end_date=
// Movement per category within the window: new trainees whose probation
// started inside it, employees still in progress, passed-out and terminated
// transits.
func (ctl *EmployeeController) Summary(c *fiber.Ctx) error {
	startDate, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("start_date")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "start_date: expected YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("end_date")))
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "end_date: expected YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return helper.Error(c, http.StatusBadRequest, "end_date is before start_date")
	}

	var rows []model.EmployeeModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", buildSummary(rows, startDate, endDate))
}

func buildSummary(rows []model.EmployeeModel, start, end time.Time) []dto.SummaryRow {
	dateRange := start.Format("2006-01-02") + " - " + end.Format("2006-01-02")
	within := func(t *time.Time) bool {
		return t != nil && !t.Before(start) && !t.After(end)
	}

	byCategory := map[string]*dto.SummaryRow{}
	order := []string{}
	for i := range rows {
		e := &rows[i]
		row, ok := byCategory[e.EmployeeType]
		if !ok {
			row = &dto.SummaryRow{Category: e.EmployeeType, DateRange: dateRange}
			byCategory[e.EmployeeType] = row
			order = append(order, e.EmployeeType)
		}

		switch e.EmployeeStatus {
		case constants.StatusInProgress:
			if within(e.EmployeeProbationStart) {
				row.NewTrainee++
			} else {
				row.InProgress++
			}
		case constants.StatusPassed:
			if within(e.EmployeeTransitDate) {
				row.Passed++
			}
		case constants.StatusTerminated:
			if within(e.EmployeeTransitDate) {
				row.Terminated++
			}
		}
	}

	out := make([]dto.SummaryRow, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCategory[cat])
	}
	return out
}
