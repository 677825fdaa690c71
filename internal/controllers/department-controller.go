package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
)

// DepartmentController handles the admin department management view
type DepartmentController interface {
	ListDepartments(c *gin.Context)
	CreateDepartment(c *gin.Context)
	UpdateDepartment(c *gin.Context)
	DeleteDepartment(c *gin.Context)
}

type departmentController struct {
	service services.DepartmentService
}

// NewDepartmentController creates a new instance of DepartmentController
func NewDepartmentController(service services.DepartmentService) *departmentController {
	return &departmentController{service: service}
}

// ListDepartments godoc
// @Summary List all departments
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 403 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/departments [get]
func (dc *departmentController) ListDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dc.service.ListDepartments())
}

// CreateDepartment godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param department body object true "name, description"
// @Success 201 {object} models.Department
// @Failure 400 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/departments [post]
func (dc *departmentController) CreateDepartment(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	department, err := dc.service.CreateDepartment(req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, department)
}

// UpdateDepartment godoc
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param department body object true "name, description"
// @Success 200 {object} models.Department
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/departments/{id} [put]
func (dc *departmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	department, err := dc.service.UpdateDepartment(id, req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, department)
}

// DeleteDepartment godoc
// @Summary Delete a department
// @Description Requires confirm=true. Employees referencing the department are left dangling.
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/departments/{id} [delete]
func (dc *departmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := dc.service.DeleteDepartment(id, confirmed(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
