package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespond_MapsKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrValidation("date", "invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"not found", ErrNotFound("service"), http.StatusNotFound, "service_not_found"},
		{"conflict", ErrConflict("job_name_taken"), http.StatusConflict, "job_name_taken"},
		{"business", ErrBusiness("date_in_past"), http.StatusUnprocessableEntity, "date_in_past"},
		{"wrapped", fmt.Errorf("create: %w", ErrConflict("duplicate")), http.StatusConflict, "duplicate"},
		{"internal", errors.New("disk full"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespond_ValidationCarriesField(t *testing.T) {
	_, body := respond(t, ErrValidation("client_phone", "invalid_phone"))
	assert.Equal(t, "client_phone", body.Field)
	assert.Equal(t, "client_phone: invalid_phone", body.Message)
}

func TestIsHelpers(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("date_in_past"))
	assert.True(t, IsBusiness(err, "date_in_past"))
	assert.False(t, IsBusiness(err, "other"))
	assert.True(t, IsNotFound(ErrNotFound("job")))
	assert.True(t, IsConflict(ErrConflict("x")))
	assert.True(t, IsValidation(ErrValidation("f", "required")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
