package integration

import (
	"net/http"
	"testing"

	"parkhub_backend/internal/services/dto"
	"parkhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdate(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	token := ts.RegisterAndLogin(t, tx, "Original Name", "profile@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/users/me", token, map[string]string{
		"name": "Renamed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var profile dto.UserResponse
	helpers.DecodeJSON(t, rec, &profile)
	assert.Equal(t, "Renamed", profile.Name)

	// A changed password works for the next login.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/users/me", token, map[string]string{
		"password": "newpassword456",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "profile@example.com",
		"password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "profile@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func TestProfileEmailUpdate(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	ts.RegisterAndLogin(t, tx, "Taken", "taken@example.com", "password123")
	token := ts.RegisterAndLogin(t, tx, "Mover", "mover@example.com", "password123")

	// Changing to an address already in use is a 400.
	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/users/me", token, map[string]string{
		"email": "taken@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// A malformed address fails validation.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/users/me", token, map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/users/me", token, map[string]string{
		"email": "moved@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var profile dto.UserResponse
	helpers.DecodeJSON(t, rec, &profile)
	assert.Equal(t, "moved@example.com", profile.Email)

	// The new address is the one that logs in.
	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "moved@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "mover@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}

func TestUserAdministration(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "admin-users@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "Member", "member@example.com", "password123")

	// The listing is admin-only.
	rec := ts.Do(t, tx, http.MethodGet, "/api/v1/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/users?search=member", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list dto.ListResponse[dto.UserResponse]
	helpers.DecodeJSON(t, rec, &list)
	require.Len(t, list.Data, 1)
	memberID := list.Data[0].ID

	// Admins cannot delete themselves.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/users/me", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var adminProfile dto.UserResponse
	helpers.DecodeJSON(t, rec, &adminProfile)

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/users/"+adminProfile.ID, adminToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/users/"+memberID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The deleted account can no longer authenticate.
	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "member@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
}
