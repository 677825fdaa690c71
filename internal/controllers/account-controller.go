package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/middleware"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
)

// AccountController handles the admin account management view
type AccountController interface {
	ListAccounts(c *gin.Context)
	CreateAccount(c *gin.Context)
	UpdateAccount(c *gin.Context)
	ResetPassword(c *gin.Context)
	DeleteAccount(c *gin.Context)
}

type accountController struct {
	service services.AccountService
	session *auth.Session
}

// NewAccountController creates a new instance of AccountController
func NewAccountController(service services.AccountService, session *auth.Session) *accountController {
	return &accountController{service: service, session: session}
}

// ListAccounts godoc
// @Summary List all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account
// @Failure 403 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/accounts [get]
func (ac *accountController) ListAccounts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ac.service.ListAccounts())
}

// CreateAccount godoc
// @Summary Create an account
// @Description Admin account creation; role and verified flag are settable directly
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body services.AccountInput true "Account fields"
// @Success 201 {object} models.Account
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/accounts [post]
func (ac *accountController) CreateAccount(ctx *gin.Context) {
	var in services.AccountInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := ac.service.CreateAccount(in)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, account)
}

// UpdateAccount godoc
// @Summary Update an account
// @Description Replaces all fields of an existing account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param account body services.AccountInput true "Account fields"
// @Success 200 {object} models.Account
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/accounts/{id} [put]
func (ac *accountController) UpdateAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var in services.AccountInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := ac.service.UpdateAccount(id, in)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// An admin editing their own row should see the change reflected in the
	// session identity.
	ac.session.Refresh()
	ctx.JSON(http.StatusOK, account)
}

// ResetPassword godoc
// @Summary Reset an account password
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param password body object true "password (min 6 characters)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/accounts/{id}/password [post]
func (ac *accountController) ResetPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := ac.service.ResetPassword(id, req.Password); err != nil {
		respondError(ctx, err)
		return
	}

	ac.session.Refresh()
	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset successfully!"})
}

// DeleteAccount godoc
// @Summary Delete an account
// @Description Requires confirm=true; the current identity can never delete itself
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Param confirm query bool true "Confirmation flag"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/accounts/{id} [delete]
func (ac *accountController) DeleteAccount(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	current := middleware.CurrentAccount(ctx)
	if err := ac.service.DeleteAccount(id, confirmed(ctx), current); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
