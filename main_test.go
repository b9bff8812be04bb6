package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestNewAppHealthCheck boots the full app against in-memory SQLite and hits
// the health endpoint. A nil publisher is valid; order events are skipped.
func TestNewAppHealthCheck(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	app, err := NewApp(AppConfig{DB: db, Publisher: nil, CacheTTL: time.Minute})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Routes are mounted under /api/v1
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
