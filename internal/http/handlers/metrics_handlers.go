package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetProviderMetricsHandler godoc
// @Summary Per-provider call outcomes
// @Tags metrics
// @Produce json
// @Success 200 {array} ProviderStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/providers [get]
func (s *Server) GetProviderMetricsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.metricsRepo.ProviderStats(r.Context())
	if err != nil {
		s.log.Error("failed to fetch provider stats", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to fetch metrics")
		return
	}

	response := make([]ProviderStatsResponse, len(stats))
	for i, st := range stats {
		response[i] = toProviderStatsResponse(st)
	}
	s.respond(w, http.StatusOK, response)
}

// HealthHandler godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, HealthResponse{Status: "ok", Providers: s.providerCount})
}
