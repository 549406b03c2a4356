package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
)

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.log.Warn("failed to write JSON response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps catalog and provider errors to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var perr *provider.Error

	switch {
	case errors.Is(err, ErrInvalidQuery),
		errors.Is(err, catalog.ErrInvalidPageSize),
		errors.Is(err, catalog.ErrInvalidPage),
		errors.Is(err, catalog.ErrInvalidSortField),
		errors.Is(err, catalog.ErrInvalidSortOrder):
		s.writeError(w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, catalog.ErrProductNotFound):
		s.writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, context.Canceled):
		// client went away, nobody reads the body
		w.WriteHeader(http.StatusRequestTimeout)
	case errors.As(err, &perr):
		s.writeError(w, http.StatusBadGateway, fmt.Sprintf("provider %s could not serve the request", perr.Provider))
	default:
		s.log.Error("unexpected error", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// clientMessage drops the sentinel prefix so only the explanation reaches the client.
func clientMessage(err error) string {
	if msg, ok := strings.CutPrefix(err.Error(), ErrInvalidQuery.Error()+": "); ok {
		return msg
	}
	return err.Error()
}

// TooManyRequests is the rate limiter's rejection response.
func (s *Server) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
}
