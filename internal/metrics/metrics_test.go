package metrics

import (
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestObserveFrame(t *testing.T) {
	m := New()

	m.ObserveFrame(10, 7, time.Millisecond)
	m.ObserveFrame(20, 7, time.Millisecond)
	m.ObserveRegenerate()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Frames))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Regenerations))

	n, err := testutil.GatherAndCount(m.Registry)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestNil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveFrame(1, 1, time.Second)
		m.ObserveRegenerate()
	})
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "none.prom")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveFrame(3, 3, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fractal_frames_total 1")
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveRegenerate()

	path := filepath.Join(t.TempDir(), "fractal.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fractal_regenerations_total 1")
}
