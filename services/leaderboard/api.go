package leaderboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(router chi.Router, service *Service) {
	router.Get("/players", service.handleGetPlayers)
}

func (s *Service) handleGetPlayers(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.GetSnapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to build leaderboard snapshot", "err", err)
		http.Error(w, "Error retrieving player data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(snapshot.Records)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to write players response", "err", err)
	}
}
