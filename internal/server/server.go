// Package server serves frames over HTTP and lets clients regenerate the trees.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mitchellh/mapstructure"
	"github.com/willbeason/radial-fractal/internal/app"
	"github.com/willbeason/radial-fractal/internal/metrics"
	"github.com/willbeason/radial-fractal/pkg/geometry"
	"log/slog"
	"net/http"
	"strconv"
)

// FrameQuery selects a frame. Unset fields use the config's defaults.
type FrameQuery struct {
	Frame  int   `mapstructure:"frame"`
	Both   *bool `mapstructure:"both"`
	Bounds *bool `mapstructure:"bounds"`
}

func (q FrameQuery) options(defaults app.Options) app.Options {
	opts := defaults
	if q.Both != nil {
		opts.Both = *q.Both
	}
	if q.Bounds != nil {
		opts.Bounds = *q.Bounds
	}
	return opts
}

// SegmentsResponse is the body of GET /segments.
type SegmentsResponse struct {
	Frame    int                `json:"frame"`
	Phase    float64            `json:"phase"`
	Segments []geometry.Segment `json:"segments"`
}

type Server struct {
	State   *app.State
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewHandler routes requests to s.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/frame.png", s.getFrame)
	r.Get("/segments", s.getSegments)
	r.Post("/regenerate", s.postRegenerate)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	return r
}

func parseQuery(r *http.Request) (FrameQuery, error) {
	values := make(map[string]interface{})
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}

	var q FrameQuery
	err := mapstructure.WeakDecode(values, &q)
	if err != nil {
		return q, fmt.Errorf("bad query: %w", err)
	}
	if q.Frame < 0 {
		return q, fmt.Errorf("bad query: frame must be non-negative, got %d", q.Frame)
	}
	return q, nil
}

func (s *Server) getFrame(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := s.State.Frame(q.Frame, q.options(s.State.DefaultOptions()))

	// Encode fully before writing anything so a failure can still change the status.
	var buf bytes.Buffer
	err = f.WritePNG(&buf)
	if err != nil {
		s.Logger.Error("failed to draw frame", "frame", q.Frame, "error", err)
		http.Error(w, "failed to draw frame", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, err = w.Write(buf.Bytes())
	if err != nil {
		s.Logger.Warn("failed to send frame", "frame", q.Frame, "error", err)
	}
}

func (s *Server) getSegments(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, _ := s.State.Trees()
	resp := SegmentsResponse{
		Frame:    q.Frame,
		Phase:    s.State.Phase(q.Frame),
		Segments: s.State.Divide(a, q.Frame),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		s.Logger.Error("failed to write segments", "frame", q.Frame, "error", err)
	}
}

func (s *Server) postRegenerate(w http.ResponseWriter, _ *http.Request) {
	s.State.Regenerate()
	w.WriteHeader(http.StatusNoContent)
}
