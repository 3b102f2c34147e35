package integration

import (
	"net/http"
	"testing"

	"parkhub_backend/internal/services/dto"
	"parkhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogListing(t *testing.T) {
	ts := helpers.GetTestServer(t)
	tx := ts.Begin(t)

	adminToken := ts.RegisterAndLogin(t, tx, "Admin", "log-admin@example.com", "password123")
	userToken := ts.RegisterAndLogin(t, tx, "User", "log-user@example.com", "password123")

	rec := ts.Do(t, tx, http.MethodGet, "/api/v1/logs", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	createVehicle(t, ts, tx, userToken, "LOG-1", "car", "small")

	// Viewing operations are audited too.
	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/vehicles", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/logs?limit=100", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list dto.ListResponse[dto.AuditLogResponse]
	helpers.DecodeJSON(t, rec, &list)
	require.NotEmpty(t, list.Data)

	actions := make(map[string]bool, len(list.Data))
	for _, entry := range list.Data {
		actions[entry.Action] = true
	}
	assert.True(t, actions["Registered vehicle LOG-1"], "vehicle registration not present in audit log")
	assert.True(t, actions["Viewed vehicles list"], "vehicle listing view not present in audit log")

	rec = ts.Do(t, tx, http.MethodGet, "/api/v1/logs?search=Registered+vehicle", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	helpers.DecodeJSON(t, rec, &list)
	assert.NotEmpty(t, list.Data)
}
