package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ayoisaiah/zwoparse/internal/config"
	"github.com/ayoisaiah/zwoparse/internal/convert"
	"github.com/ayoisaiah/zwoparse/internal/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: config.Version,
	})
}

// handleConvert renders the workout file in the request body. The output
// type and rider values come from the query string, falling back to the
// server defaults.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.New(
		config.WithBase(s.defaults),
		config.WithQuery(r.URL.Query()),
	)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	res, err := convert.Convert(body, convert.Options{
		Format:      cfg.Format,
		MinDuration: cfg.MinDuration,
		Athlete:     cfg.Athlete(),
		Date:        s.now(),
	})
	if err != nil {
		status := http.StatusBadRequest

		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}

		s.log.Warn("conversion failed", "error", err)
		s.writeJSON(w, status, errorResponse{Error: err.Error()})

		return
	}

	w.Header().Set("Content-Type", render.ContentType(cfg.Format))
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", cfg.OutputPath()),
	)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(res.Output); err != nil {
		s.log.Warn("writing response failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response failed", "error", err)
	}
}
