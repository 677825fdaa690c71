package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

func TestDepartmentCRUD(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewDepartmentService(st)

	// Seeded departments are present
	assert.Len(t, svc.ListDepartments(), 2)

	_, err := svc.CreateDepartment("Ops", "")
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	created, err := svc.CreateDepartment("Ops", "Operations team")
	require.NoError(t, err)
	assert.Len(t, svc.ListDepartments(), 3)

	updated, err := svc.UpdateDepartment(created.ID, "Operations", "Operations team")
	require.NoError(t, err)
	assert.Equal(t, "Operations", updated.Name)

	_, err = svc.UpdateDepartment(999, "X", "Y")
	require.Error(t, err)
	assert.Equal(t, models.ErrNotFound, models.ErrorCode(err))

	err = svc.DeleteDepartment(created.ID, false)
	require.Error(t, err)
	assert.Equal(t, models.ErrConfirmationRequired, models.ErrorCode(err))

	require.NoError(t, svc.DeleteDepartment(created.ID, true))
	assert.Len(t, svc.ListDepartments(), 2)
}

func TestDepartmentDeleteLeavesEmployeesDangling(t *testing.T) {
	st, _ := setupTestStore(t)
	deptSvc := NewDepartmentService(st)
	empSvc := NewEmployeeService(st)

	_, err := empSvc.CreateEmployee(EmployeeInput{
		EmployeeID: "EMP-1", UserEmail: "admin@example.com",
		Position: "Engineer", DeptID: 1, HireDate: "2026-01-15",
	})
	require.NoError(t, err)

	// No referential guard: the delete goes through
	require.NoError(t, deptSvc.DeleteDepartment(1, true))

	records := empSvc.ListEmployees()
	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", records[0].DepartmentName)
}
