package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tahir0900/expense-backend/internal/config"
	"github.com/tahir0900/expense-backend/internal/database"
	"github.com/tahir0900/expense-backend/internal/router"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupEnv builds a router over a fresh in-memory database.
func setupEnv(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{
			BcryptCost:      4, // keep tests fast
			ResetTokenHours: 1,
		},
	}
	return router.SetupRouter(cfg, db), db
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var items []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return items
}

// signup registers a user and returns their API token.
func signup(t *testing.T, h http.Handler, name, email, password string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, body %s", w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatal("signup returned no token")
	}
	return token
}

// createCategory creates a category and returns its id.
func createCategory(t *testing.T, h http.Handler, token string, payload map[string]interface{}) uint {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/categories", token, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create category status = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := decodeBody(t, w)["id"].(float64)
	return uint(id)
}

// createTransaction creates a transaction and returns its id.
func createTransaction(t *testing.T, h http.Handler, token string, payload map[string]interface{}) uint {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/transactions", token, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create transaction status = %d, body %s", w.Code, w.Body.String())
	}
	id, _ := decodeBody(t, w)["id"].(float64)
	return uint(id)
}
