package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONHidesWrappedError(t *testing.T) {
	appErr := Wrap(errors.New("driver: bad connection"), CodeDatabaseError, "storage", "Storage failure", http.StatusInternalServerError)

	payload, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "driver: bad connection")
	assert.Contains(t, string(payload), "Storage failure")
}

func TestUnwrapAndIs(t *testing.T) {
	cause := errors.New("row not found")
	appErr := Wrap(cause, CodeNotFound, "vehicle", "Vehicle not found", http.StatusNotFound)

	assert.True(t, errors.Is(appErr, cause))
	assert.Equal(t, cause, appErr.Unwrap())
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeForbidden, "auth", "Admin access required", http.StatusForbidden)

	got, ok := AsAppError(appErr)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", details["email"])
}

func TestDomainErrorStatusCodes(t *testing.T) {
	// Uniqueness conflicts are 400 by contract, not 409.
	assert.Equal(t, http.StatusBadRequest, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrPlateAlreadyExists.HTTPCode)

	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrAccountNotVerified.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrRequestNotProcessable.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrNoCompatibleSlots.HTTPCode)
}
