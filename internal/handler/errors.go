package handler

import (
	"errors"
	"net/http"

	"pulseauto/internal/desking"
	"pulseauto/internal/service"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps service and engine errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, desking.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, desking.ErrComputation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
}

func respondBadWindow(c *gin.Context) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "skip must be >= 0 and limit must be between 1 and 1000"))
}
