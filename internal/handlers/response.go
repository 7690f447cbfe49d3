package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealernet/garage-backend/internal/apierr"
)

// Error envelopes. Typed domain errors surface their message; anything
// else becomes a generic 500 so internal detail never crosses the API.

type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

type ValidationErrorBody struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Errors    map[string]string `json:"errors"`
}

func RespondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		respondErrorBody(c, apiErr.Status, apiErr.Error())
		return
	}
	respondErrorBody(c, http.StatusInternalServerError, "internal server error")
}

func respondErrorBody(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

func RespondValidationErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationErrorBody{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Validation failed",
		Errors:    errs,
	})
}

func RespondBadRequest(c *gin.Context, message string) {
	respondErrorBody(c, http.StatusBadRequest, message)
}
