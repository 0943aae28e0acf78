// Package api exposes the registry and simulator over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/sim"
	"github.com/jokersim/joker-engine-go/internal/store"
)

// Server handles HTTP requests.
type Server struct {
	store     *store.SQLiteStore
	simulator *sim.Simulator
	logger    zerolog.Logger
}

// NewServer wires the API against the store and a fresh simulator. The
// store may be nil; simulation results are then not persisted.
func NewServer(st *store.SQLiteStore, logger zerolog.Logger) *Server {
	return &Server{
		store:     st,
		simulator: sim.New(logger),
		logger:    logger,
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/registry", s.handleListRegistry)
		r.Get("/registry/{id}", s.handleGetRegistryEntry)
		r.Post("/simulate", s.handleSimulate)
		r.Get("/batches/{id}", s.handleGetBatch)
	})

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// entryView is the wire shape of a registry entry.
type entryView struct {
	ID          joker.ID     `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rarity      string       `json:"rarity"`
	Cost        int64        `json:"cost"`
	Unlock      joker.Unlock `json:"unlock,omitempty"`
}

func viewOf(e joker.Entry) entryView {
	return entryView{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Rarity:      e.Rarity.String(),
		Cost:        e.Cost,
		Unlock:      e.Unlock,
	}
}
