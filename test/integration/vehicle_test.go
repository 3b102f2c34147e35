package integration

import (
	"net/http"
	"testing"

	"parkhub_backend/internal/services/dto"
	"parkhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleLifecycle(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	token := ts.RegisterAndLogin(t, tx, "Owner", "vehicle-owner@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/vehicles", token, map[string]interface{}{
		"plate_number": "ABC-123",
		"vehicle_type": "car",
		"size":         "medium",
		"other_attributes": map[string]string{
			"color": "red",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var vehicle dto.VehicleResponse
	helpers.DecodeJSON(t, rec, &vehicle)
	assert.Equal(t, "ABC-123", vehicle.PlateNumber)

	// Duplicate plate is a 400.
	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/vehicles", token, map[string]string{
		"plate_number": "ABC-123",
		"vehicle_type": "car",
		"size":         "small",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// Invalid enum values fail validation.
	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/vehicles", token, map[string]string{
		"plate_number": "XYZ-999",
		"vehicle_type": "spaceship",
		"size":         "medium",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/vehicles/"+vehicle.ID, token, map[string]string{
		"plate_number": "ABC-124",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	helpers.DecodeJSON(t, rec, &vehicle)
	assert.Equal(t, "ABC-124", vehicle.PlateNumber)

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/vehicles/"+vehicle.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/vehicles/"+vehicle.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestVehicleOwnershipIsolation(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "iso-admin@example.com", "password123")
	aliceToken := ts.RegisterAndLogin(t, tx, "Alice", "iso-alice@example.com", "password123")
	bobToken := ts.RegisterAndLogin(t, tx, "Bob", "iso-bob@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/vehicles", aliceToken, map[string]string{
		"plate_number": "ALICE-1",
		"vehicle_type": "car",
		"size":         "small",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var aliceVehicle dto.VehicleResponse
	helpers.DecodeJSON(t, rec, &aliceVehicle)

	// Bob cannot see, edit or delete Alice's vehicle.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/vehicles/"+aliceVehicle.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/vehicles/"+aliceVehicle.ID, bobToken, map[string]string{
		"plate_number": "BOB-1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/vehicles/"+aliceVehicle.ID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	// Bob's listing does not include Alice's vehicle.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/vehicles", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var bobList dto.ListResponse[dto.VehicleResponse]
	helpers.DecodeJSON(t, rec, &bobList)
	assert.Empty(t, bobList.Data)

	// Admins see every vehicle.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/vehicles", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var adminList dto.ListResponse[dto.VehicleResponse]
	helpers.DecodeJSON(t, rec, &adminList)
	assert.Len(t, adminList.Data, 1)
}
