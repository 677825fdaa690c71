package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/middleware"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
)

// RequestController handles the purchase request view. The list is always
// owner-filtered, admins included.
type RequestController interface {
	ListRequests(c *gin.Context)
	SubmitRequest(c *gin.Context)
}

type requestController struct {
	service services.RequestService
}

// NewRequestController creates a new instance of RequestController
func NewRequestController(service services.RequestService) *requestController {
	return &requestController{service: service}
}

// ListRequests godoc
// @Summary List the current identity's requests
// @Tags requests
// @Produce json
// @Success 200 {array} models.Request
// @Failure 401 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/requests [get]
func (rc *requestController) ListRequests(ctx *gin.Context) {
	current := middleware.CurrentAccount(ctx)
	if current == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	ctx.JSON(http.StatusOK, rc.service.ListRequestsFor(current.Email))
}

// SubmitRequest godoc
// @Summary Submit a purchase request
// @Description Unnamed item rows are dropped; at least one named item is required
// @Tags requests
// @Accept json
// @Produce json
// @Param request body object true "type, items"
// @Success 201 {object} models.Request
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/requests [post]
func (rc *requestController) SubmitRequest(ctx *gin.Context) {
	current := middleware.CurrentAccount(ctx)
	if current == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req struct {
		Type  string               `json:"type"`
		Items []models.RequestItem `json:"items"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	request, err := rc.service.SubmitRequest(current.Email, req.Type, req.Items)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, request)
}
