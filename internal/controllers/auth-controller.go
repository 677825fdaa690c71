package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/middleware"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/services"
)

type AuthController struct {
	authService services.AuthService
	session     *auth.Session
}

func NewAuthController(authService services.AuthService, session *auth.Session) *AuthController {
	return &AuthController{
		authService: authService,
		session:     session,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an unverified user account and mark its email as pending verification
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body object true "firstName, lastName, email, password"
// @Success 201 {object} models.Account
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := ac.authService.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account":  account,
		"redirect": "/verify-email",
	})
}

// PendingVerification godoc
// @Summary Show the email awaiting verification
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/auth/verify-email [get]
func (ac *AuthController) PendingVerification(c *gin.Context) {
	email, _, err := ac.authService.PendingEmail()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// VerifyEmail godoc
// @Summary Verify the pending registration
// @Description Simulated email confirmation: flips the pending account to verified
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/auth/verify-email [post]
func (ac *AuthController) VerifyEmail(c *gin.Context) {
	account, err := ac.authService.Verify()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Email verified! You can now log in.",
		"account":  account,
		"redirect": "/login",
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password; only verified accounts can log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "email, password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	account, err := ac.session.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account":  account,
		"redirect": "/profile",
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.session.Logout(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// Session godoc
// @Summary Current session state
// @Description Reports the authenticated identity, for navigation state
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/auth/session [get]
func (ac *AuthController) Session(c *gin.Context) {
	current := ac.session.Current()
	if current == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"account":       current,
	})
}

// Profile godoc
// @Summary Current account profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.Account
// @Failure 401 {object} models.APIError
// @Security SessionAuth
// @Router /api/v1/profile [get]
func (ac *AuthController) Profile(c *gin.Context) {
	account := middleware.CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, account)
}
