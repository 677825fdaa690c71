package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

// respondError maps a domain error kind to an HTTP status and writes the
// standard error payload.
func respondError(ctx *gin.Context, err error) {
	code := models.ErrorCode(err)
	status := http.StatusBadRequest
	switch code {
	case models.ErrInvalidCredentials, models.ErrUnauthorized:
		status = http.StatusUnauthorized
	case models.ErrForbidden, models.ErrCannotDeleteSelf:
		status = http.StatusForbidden
	case models.ErrNotFound:
		status = http.StatusNotFound
	case models.ErrDuplicateEmail:
		status = http.StatusConflict
	case models.ErrInternalServer:
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, models.APIError{Code: code, Message: err.Error()})
}

// parseIDParam reads the :id path parameter as a record id. A non-numeric id
// gets a 400 response; the caller should return immediately when ok is false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.APIError{
			Code:    models.ErrValidationFailed,
			Message: "Invalid id format",
		})
		return 0, false
	}
	return id, true
}

// confirmed reports whether the caller sent the confirm=true flag, the HTTP
// stand-in for the interactive delete confirmation dialog.
func confirmed(ctx *gin.Context) bool {
	return ctx.Query("confirm") == "true"
}
