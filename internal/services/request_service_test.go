package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

func TestSubmitRequestRequiresItems(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewRequestService(st)

	_, err := svc.SubmitRequest("admin@example.com", "Supplies", nil)
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	// Unnamed rows are dropped before the check
	_, err = svc.SubmitRequest("admin@example.com", "Supplies", []models.RequestItem{
		{Name: "", Qty: 3}, {Name: "   ", Qty: 1},
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	assert.Empty(t, svc.ListRequestsFor("admin@example.com"))
}

func TestSubmitRequest(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewRequestService(st)

	request, err := svc.SubmitRequest("admin@example.com", "Supplies", []models.RequestItem{
		{Name: "Stapler", Qty: 2},
		{Name: "", Qty: 5},
		{Name: "Paper", Qty: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, "admin@example.com", request.EmployeeEmail)
	require.Len(t, request.Items, 2)
	assert.Equal(t, "Stapler", request.Items[0].Name)
	// Quantities below one take the form default of one
	assert.Equal(t, 1, request.Items[1].Qty)
	assert.NotEmpty(t, request.Date)
}

func TestRequestListIsOwnerFiltered(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewRequestService(st)

	_, err := svc.SubmitRequest("pat@example.com", "Supplies", []models.RequestItem{{Name: "Desk", Qty: 1}})
	require.NoError(t, err)
	_, err = svc.SubmitRequest("dana@example.com", "Equipment", []models.RequestItem{{Name: "Chair", Qty: 1}})
	require.NoError(t, err)

	pats := svc.ListRequestsFor("pat@example.com")
	require.Len(t, pats, 1)
	assert.Equal(t, "Desk", pats[0].Items[0].Name)

	// Owner filtering applies to everyone, the seeded admin included
	assert.Empty(t, svc.ListRequestsFor("admin@example.com"))
}
