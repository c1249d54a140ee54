package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sparklewash/database/repository"
	"sparklewash/models"
	"sparklewash/services/booking"
	"sparklewash/services/payment"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"illegal transition", &booking.InvalidTransitionError{From: models.StatusCompleted}, http.StatusConflict},
		{"lost status race", repository.ErrConflict, http.StatusConflict},
		{"missing record", repository.ErrNotFound, http.StatusNotFound},
		{"rejected input", &payment.ValidationError{Field: "amount", Reason: "must be positive"}, http.StatusBadRequest},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tc.err)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
