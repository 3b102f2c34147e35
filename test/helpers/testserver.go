package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"parkhub_backend/database"
	"parkhub_backend/internal/app"
	"parkhub_backend/internal/config"
	"parkhub_backend/internal/logger"
	"parkhub_backend/internal/services/dto"
	"parkhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	setupOnce sync.Once
	shared    *TestServer
	setupErr  error
)

// TestServer hosts the full router over a real database. Each test runs its requests
// inside its own transaction, injected through the request context, so tests never see
// each other's rows.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Mailer *MockMailer
}

// GetTestServer returns the shared server, skipping the test when DATABASE_URL is not
// set.
func GetTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		config.LoadConfig()
		cfg := config.GetConfig()
		if cfg.JWT.Secret == "" {
			cfg.JWT.Secret = "integration-test-secret"
		}
		logger.Init("test")

		db, err := database.Connect(cfg.Database.DSN)
		if err != nil {
			setupErr = fmt.Errorf("connect: %w", err)
			return
		}
		if err := database.Migrate(db); err != nil {
			setupErr = fmt.Errorf("migrate: %w", err)
			return
		}

		mailer := NewMockMailer()
		shared = &TestServer{
			Router: app.SetupRouter(cfg, db, mailer),
			DB:     db,
			Mailer: mailer,
		}
	})
	if setupErr != nil {
		t.Fatalf("test server setup failed: %v", setupErr)
	}
	return shared
}

// Begin opens the per-test transaction and registers its rollback.
func (ts *TestServer) Begin(t *testing.T) *gorm.DB {
	t.Helper()
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

// Do performs a request against the router inside the given transaction.
func (ts *TestServer) Do(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals a response body, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// RegisterAndLogin walks a fresh account through register, OTP verification and login,
// returning its bearer token.
func (ts *TestServer) RegisterAndLogin(t *testing.T, tx *gorm.DB, name, email, password string) string {
	t.Helper()

	rec := ts.Do(t, tx, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}

	otp := ts.Mailer.LastOtp(email)
	if otp == "" {
		t.Fatalf("no OTP recorded for %s", email)
	}

	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/verify-otp", "", map[string]string{
		"email": email,
		"otp":   otp,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("verify %s: status %d body %s", email, rec.Code, rec.Body.String())
	}

	rec = ts.Do(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, rec.Code, rec.Body.String())
	}

	var resp dto.LoginResponse
	DecodeJSON(t, rec, &resp)
	return resp.Token
}
