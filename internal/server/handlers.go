package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/nao1215/passmeter/internal/model"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

// Error messages returned by POST /api/analyze.
const (
	MsgPasswordRequired = "Password is required"
	MsgNoPassword       = "No password provided"
	MsgInvalidJSON      = "Invalid JSON body"
	MsgPasswordType     = "Password must be a string"
	MsgBodyTooLarge     = "Request body too large"
)

// AnalyzeResponse is the body of POST /api/analyze.
type AnalyzeResponse struct {
	Status   string            `json:"status"`
	Analysis *model.Assessment `json:"analysis,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// DocsResponse is the body of GET /api/docs.
type DocsResponse struct {
	Service        string            `json:"service"`
	Version        string            `json:"version"`
	Endpoints      map[string]string `json:"endpoints"`
	ExampleRequest ExampleRequest    `json:"example_request"`
}

// ExampleRequest shows how to call the analyze endpoint.
type ExampleRequest struct {
	URL    string            `json:"url"`
	Method string            `json:"method"`
	Body   map[string]string `json:"body"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, MsgPasswordRequired)
		default:
			writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		}
		return
	}

	raw, ok := body["password"]
	if !ok {
		writeError(w, http.StatusBadRequest, MsgPasswordRequired)
		return
	}
	var password *string
	if err := json.Unmarshal(raw, &password); err != nil {
		writeError(w, http.StatusBadRequest, MsgPasswordType)
		return
	}
	if password == nil || *password == "" {
		writeJSON(w, http.StatusOK, AnalyzeResponse{Status: StatusError, Error: MsgNoPassword})
		return
	}

	start := time.Now()
	a := s.meter.Analyze(*password)
	s.metrics.ObserveAnalysis(a.Strength.Tier, time.Since(start))

	writeJSON(w, http.StatusOK, AnalyzeResponse{Status: StatusSuccess, Analysis: &a})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  StatusHealthy,
		Service: ServiceName,
		Version: s.version,
	})
}

func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, DocsResponse{
		Service: ServiceName,
		Version: s.version,
		Endpoints: map[string]string{
			"POST /api/analyze": "Analyze password strength",
			"GET /api/health":   "Health check",
			"GET /api/docs":     "API documentation",
			"GET /metrics":      "Prometheus metrics",
		},
		ExampleRequest: ExampleRequest{
			URL:    "/api/analyze",
			Method: http.MethodPost,
			Body:   map[string]string{"password": "your_password_here"},
		},
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v) //nolint:errchkjson // nothing to do once the header is sent
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, AnalyzeResponse{Status: StatusError, Error: msg})
}
