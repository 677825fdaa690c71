package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
)

// EmployeeController handles the admin employee management view. There is no
// update endpoint: employee records are created and deleted whole.
type EmployeeController interface {
	ListEmployees(c *gin.Context)
	CreateEmployee(c *gin.Context)
	DeleteEmployee(c *gin.Context)
}

type employeeController struct {
	service services.EmployeeService
}

// NewEmployeeController creates a new instance of EmployeeController
func NewEmployeeController(service services.EmployeeService) *employeeController {
	return &employeeController{service: service}
}

// ListEmployees godoc
// @Summary List all employee records
// @Description Rows carry the resolved department name, or "Unknown" for dangling references
// @Tags employees
// @Produce json
// @Success 200 {array} services.EmployeeRecord
// @Failure 403 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/employees [get]
func (ec *employeeController) ListEmployees(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ec.service.ListEmployees())
}

// CreateEmployee godoc
// @Summary Create an employee record
// @Description The userEmail must match an existing account
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body services.EmployeeInput true "Employee fields"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/employees [post]
func (ec *employeeController) CreateEmployee(ctx *gin.Context) {
	var in services.EmployeeInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, err := ec.service.CreateEmployee(in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, employee)
}

// DeleteEmployee godoc
// @Summary Delete an employee record
// @Description Requires confirm=true
// @Tags employees
// @Produce json
// @Param id path int true "Employee record ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/employees/{id} [delete]
func (ec *employeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := ec.service.DeleteEmployee(id, confirmed(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
