package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officegate/officegate/internal/config"
	"github.com/officegate/officegate/internal/logging"
)

// One server per test binary: Prometheus collectors register on the default
// registry, so building a second server would panic on duplicate metrics.
func TestServerEndpoints(t *testing.T) {
	cfg := config.Default()
	cfg.Docs.Dir = t.TempDir()

	srv, err := New(cfg, logging.NewNop())
	require.NoError(t, err)

	do := func(method, target string, body interface{}) *httptest.ResponseRecorder {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, target, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		return rec
	}

	t.Run("root", func(t *testing.T) {
		rec := do(http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "officegate")
	})

	t.Run("health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "healthy")
	})

	t.Run("request id echoed", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", nil)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("list services", func(t *testing.T) {
		rec := do(http.MethodGet, "/services", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Services []struct {
				ID string `json:"id"`
			} `json:"services"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		ids := make([]string, 0, len(body.Services))
		for _, s := range body.Services {
			ids = append(ids, s.ID)
		}
		assert.ElementsMatch(t, []string{"word", "spreadsheet", "presentation", "library"}, ids)
	})

	t.Run("discover", func(t *testing.T) {
		rec := do(http.MethodPost, "/services/discover", map[string]interface{}{
			"intent": "create a word document",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "word")
	})

	t.Run("execute lifecycle", func(t *testing.T) {
		rec := do(http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "word.create",
			"params":  map[string]interface{}{"filename": "memo", "content": "Hello"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Success bool                   `json:"success"`
			Data    map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)

		rec = do(http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "word.read",
			"params":  map[string]interface{}{"filename": "memo"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "Hello", result.Data["message"])
	})

	t.Run("execute unknown service", func(t *testing.T) {
		rec := do(http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "music.play",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("execute malformed tool id", func(t *testing.T) {
		rec := do(http.MethodPost, "/services/execute", map[string]interface{}{
			"tool_id": "bareword",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		rec := do(http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "officegate_http_requests_total")
	})
}
