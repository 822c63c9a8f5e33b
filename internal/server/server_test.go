package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanas/greet-service/internal/config"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

func newTestDeps() *Dependencies {
	return &Dependencies{
		Config: &config.Config{
			Server:   config.ServerConfig{Port: "8080"},
			Greeting: config.GreetingConfig{DefaultLanguage: "en"},
		},
	}
}

func TestGreetEndpoint(t *testing.T) {
	router := New(newTestDeps())

	t.Run("returns crafted greeting", func(t *testing.T) {
		body := `{"name":"Asha","mood":"tired"}`
		req := httptest.NewRequest(http.MethodPost, "/greet", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "Hello, Asha! Hope you're doing tired.", response["message"])
		assert.Equal(t, "gentle", response["tone"])
		assert.Equal(t, []interface{}{"Take a short break and hydrate."}, response["tips"])
	})

	t.Run("rejects all-digit names", func(t *testing.T) {
		body := `{"name":"123","mood":"happy"}`
		req := httptest.NewRequest(http.MethodPost, "/greet", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "Name cannot be all digits.", response["detail"])
	})

	t.Run("rejects unsupported languages", func(t *testing.T) {
		body := `{"name":"A","mood":"happy","language":"de"}`
		req := httptest.NewRequest(http.MethodPost, "/greet", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "Unsupported language. Use 'en' or 'hi'.", response["detail"])
	})

	t.Run("identical requests yield identical responses", func(t *testing.T) {
		body := `{"name":"Riya","mood":"happy","language":"hi","time_of_day":"morning"}`

		var bodies []string
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/greet", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			bodies = append(bodies, w.Body.String())
		}

		assert.Equal(t, bodies[0], bodies[1])
		assert.Equal(t, bodies[1], bodies[2])
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := New(newTestDeps())

	t.Run("returns 200 OK", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("returns correct JSON structure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, map[string]interface{}{"status": "ok"}, response)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	router := New(newTestDeps())

	t.Run("generates request ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes inbound request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "test-request-id")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "test-request-id", w.Header().Get("X-Request-ID"))
	})
}
