package integration

import (
	"net/http"
	"testing"

	"parkhub_backend/internal/services/dto"
	"parkhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createVehicle(t *testing.T, ts *helpers.TestServer, tx *gorm.DB, token, plate, vtype, size string) dto.VehicleResponse {
	t.Helper()
	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/vehicles", token, map[string]string{
		"plate_number": plate,
		"vehicle_type": vtype,
		"size":         size,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var vehicle dto.VehicleResponse
	helpers.DecodeJSON(t, rec, &vehicle)
	return vehicle
}

func createRequest(t *testing.T, ts *helpers.TestServer, tx *gorm.DB, token, vehicleID string) dto.SlotRequestResponse {
	t.Helper()
	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/requests", token, map[string]string{
		"vehicle_id": vehicleID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var request dto.SlotRequestResponse
	helpers.DecodeJSON(t, rec, &request)
	return request
}

func TestRequestApprovalReservesSlot(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "req-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "req-user@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, map[string]interface{}{
		"slots": []map[string]string{
			{"slot_number": "R-01", "size": "medium", "vehicle_type": "car", "location": "west"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	vehicle := createVehicle(t, ts, tx, userToken, "REQ-1", "car", "medium")
	request := createRequest(t, ts, tx, userToken, vehicle.ID)
	assert.Equal(t, "pending", string(request.RequestStatus))

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var approved dto.ApproveResponse
	helpers.DecodeJSON(t, rec, &approved)
	assert.Equal(t, "approved", string(approved.Request.RequestStatus))
	assert.Equal(t, "R-01", approved.Request.SlotNumber)
	assert.NotNil(t, approved.Request.ApprovedAt)
	assert.Equal(t, "unavailable", string(approved.Slot.Status))
	assert.Equal(t, dto.EmailStatusSent, approved.EmailStatus)

	// A second approval of the same request fails; terminal states are write-once.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	// The approved request is no longer editable or deletable by its owner.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID, userToken, map[string]string{
		"vehicle_id": vehicle.ID,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/requests/"+request.ID, userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	// The reserved slot cannot serve another request.
	vehicle2 := createVehicle(t, ts, tx, userToken, "REQ-2", "car", "medium")
	request2 := createRequest(t, ts, tx, userToken, vehicle2.ID)
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request2.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestRequestApproveNoCompatibleSlot(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "nocompat-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "nocompat-user@example.com", "password123")

	// Only a small motorcycle slot exists; the truck request cannot match it.
	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, map[string]interface{}{
		"slots": []map[string]string{
			{"slot_number": "NC-01", "size": "small", "vehicle_type": "motorcycle", "location": "east"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	vehicle := createVehicle(t, ts, tx, userToken, "TRUCK-1", "truck", "large")
	request := createRequest(t, ts, tx, userToken, vehicle.ID)

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// The failed approval leaves the request pending.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/requests", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list dto.ListResponse[dto.SlotRequestResponse]
	helpers.DecodeJSON(t, rec, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "pending", string(list.Data[0].RequestStatus))
}

func TestRequestRejection(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "rej-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "rej-user@example.com", "password123")

	vehicle := createVehicle(t, ts, tx, userToken, "REJ-1", "van", "large")
	request := createRequest(t, ts, tx, userToken, vehicle.ID)

	// A reason is mandatory.
	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/reject", adminToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/reject", adminToken, map[string]string{
		"reason": "no capacity this month",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rejected dto.RejectResponse
	helpers.DecodeJSON(t, rec, &rejected)
	assert.Equal(t, "rejected", string(rejected.Request.RequestStatus))
	assert.Equal(t, "no capacity this month", rejected.Request.RejectReason)
	assert.Equal(t, dto.EmailStatusSent, rejected.EmailStatus)

	// No slot matches the vehicle, so the notification names the location as unknown.
	assert.Equal(t, "unknown", ts.Mailer.RejectionLocation())

	// Rejection is terminal too.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestApproveAndRejectRequireAdmin(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	ts.RegisterAndLogin(t, tx, "Admin", "gate-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "gate-user@example.com", "password123")

	vehicle := createVehicle(t, ts, tx, userToken, "GATE-1", "car", "small")
	request := createRequest(t, ts, tx, userToken, vehicle.ID)

	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/approve", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/reject", userToken, map[string]string{
		"reason": "self-service",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	// The gate refusals leave the request pending.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/requests", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list dto.ListResponse[dto.SlotRequestResponse]
	helpers.DecodeJSON(t, rec, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "pending", string(list.Data[0].RequestStatus))
}

func TestRejectionEmailFailureIsBestEffort(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "mailfail-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "mailfail-user@example.com", "password123")

	vehicle := createVehicle(t, ts, tx, userToken, "MAIL-1", "car", "small")
	request := createRequest(t, ts, tx, userToken, vehicle.ID)

	ts.Mailer.FailNext()
	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID+"/reject", adminToken, map[string]string{
		"reason": "lot closed",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rejected dto.RejectResponse
	helpers.DecodeJSON(t, rec, &rejected)
	assert.Equal(t, "rejected", string(rejected.Request.RequestStatus))
	assert.Equal(t, dto.EmailStatusFailed, rejected.EmailStatus)
}

func TestPendingRequestEditAndCancel(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	ts.RegisterAndLogin(t, tx, "Admin", "edit-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "edit-user@example.com", "password123")

	vehicle1 := createVehicle(t, ts, tx, userToken, "EDIT-1", "car", "small")
	vehicle2 := createVehicle(t, ts, tx, userToken, "EDIT-2", "car", "medium")
	request := createRequest(t, ts, tx, userToken, vehicle1.ID)

	rec := ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID, userToken, map[string]string{
		"vehicle_id": vehicle2.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.SlotRequestResponse
	helpers.DecodeJSON(t, rec, &updated)
	assert.Equal(t, vehicle2.ID, updated.VehicleID)
	assert.Equal(t, "EDIT-2", updated.PlateNumber)

	// Another user's request cannot be edited.
	otherToken := ts.RegisterAndLogin(t, tx, "Other", "edit-other@example.com", "password123")
	otherVehicle := createVehicle(t, ts, tx, otherToken, "EDIT-3", "car", "small")
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/requests/"+request.ID, otherToken, map[string]string{
		"vehicle_id": otherVehicle.ID,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/requests/"+request.ID, userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/requests", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list dto.ListResponse[dto.SlotRequestResponse]
	helpers.DecodeJSON(t, rec, &list)
	assert.Empty(t, list.Data)
}
