package integration

import (
	"fmt"
	"net/http"
	"testing"

	"parkhub_backend/internal/services/dto"
	"parkhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotBatch(count int, prefix string) map[string]interface{} {
	slots := make([]map[string]string, 0, count)
	for i := 1; i <= count; i++ {
		slots = append(slots, map[string]string{
			"slot_number":  fmt.Sprintf("%s-%02d", prefix, i),
			"size":         "medium",
			"vehicle_type": "car",
			"location":     "north wing",
		})
	}
	return map[string]interface{}{"slots": slots}
}

func TestSlotBulkCreateRequiresAdmin(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	ts.RegisterAndLogin(t, tx, "Admin", "slot-admin0@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "slot-user0@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", userToken, slotBatch(1, "NA"))
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}

func TestSlotBulkCreateAndPagination(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "slot-admin@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, slotBatch(23, "A"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Re-creating any of the same numbers rejects the whole batch.
	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, slotBatch(3, "A"))
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/slots?page=3&limit=10", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list dto.ListResponse[dto.SlotResponse]
	helpers.DecodeJSON(t, rec, &list)
	assert.Equal(t, int64(23), list.Meta.TotalItems)
	assert.Equal(t, 3, list.Meta.TotalPages)
	assert.Equal(t, 3, list.Meta.CurrentPage)
	assert.Len(t, list.Data, 3)
}

func TestSlotBatchWithInternalDuplicateRejected(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "slot-admin2@example.com", "password123")

	batch := map[string]interface{}{
		"slots": []map[string]string{
			{"slot_number": "D-01", "size": "small", "vehicle_type": "car", "location": "east"},
			{"slot_number": "D-01", "size": "small", "vehicle_type": "car", "location": "east"},
		},
	}
	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, batch)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestSlotVisibilityByRole(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "slot-admin3@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "slot-user3@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/slots", adminToken, slotBatch(2, "V"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created []dto.SlotResponse
	helpers.DecodeJSON(t, rec, &created)
	require.Len(t, created, 2)

	// Mark one slot unavailable; regular users should stop seeing it.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/slots/"+created[0].ID, adminToken, map[string]string{
		"status": "unavailable",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/slots", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var userList dto.ListResponse[dto.SlotResponse]
	helpers.DecodeJSON(t, rec, &userList)
	assert.Equal(t, int64(1), userList.Meta.TotalItems)

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/slots", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var adminList dto.ListResponse[dto.SlotResponse]
	helpers.DecodeJSON(t, rec, &adminList)
	assert.Equal(t, int64(2), adminList.Meta.TotalItems)

	// Only admins can update or delete slots.
	rec = ts.Do(t, tx, http.MethodPut, "/api/v1/slots/"+created[1].ID, userToken, map[string]string{
		"location": "south",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodDelete, "/api/v1/slots/"+created[1].ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
