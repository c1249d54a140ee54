package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sparklewash/database/repository"
	"sparklewash/services/booking"
	"sparklewash/services/payment"
	"sparklewash/utils"
)

// respondError maps domain errors onto HTTP statuses: illegal transitions and
// lost CAS races are conflicts, missing records are 404s, rejected client
// input is a 400, everything else is a 500. Nothing is swallowed.
func respondError(c *gin.Context, err error) {
	var invalid *booking.InvalidTransitionError
	var validation *payment.ValidationError
	switch {
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", invalid.Error())
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validation.Error())
	case errors.Is(err, repository.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "booking was modified concurrently", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "record not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
	}
}
