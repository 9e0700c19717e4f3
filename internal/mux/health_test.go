package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatjack-server/pkg/bank"

	"github.com/bmizerany/assert"
)

func TestMux_GetHealth(t *testing.T) {
	m := newMux("v1.2.3", bank.NewMemory())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	m.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var payload healthResponse
	assert.Equal(t, nil, json.NewDecoder(w.Body).Decode(&payload))
	assert.Equal(t, "OK", payload.Status)
	assert.Equal(t, "v1.2.3", payload.Version)
}

func TestMux_GetHealth_MethodNotAllowed(t *testing.T) {
	m := newMux("v1.2.3", bank.NewMemory())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/health", nil)
	m.ServeHTTP(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
