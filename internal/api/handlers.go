package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/sim"
	"github.com/jokersim/joker-engine-go/internal/store"
)

// handleListRegistry returns every registered joker kind. The optional
// ?rarity= filter narrows to one tier.
func (s *Server) handleListRegistry(w http.ResponseWriter, r *http.Request) {
	reg := joker.Default()
	entries := reg.All()

	if q := r.URL.Query().Get("rarity"); q != "" {
		var tier joker.Rarity
		found := false
		for _, t := range joker.Rarities() {
			if t.String() == q {
				tier, found = t, true
				break
			}
		}
		if !found {
			s.writeError(w, http.StatusBadRequest, "unknown rarity: "+q)
			return
		}
		entries = reg.ByRarity(tier)
	}

	views := make([]entryView, len(entries))
	for i, e := range entries {
		views[i] = viewOf(e)
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(views),
		"jokers": views,
	})
}

func (s *Server) handleGetRegistryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := joker.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	e, _ := joker.Default().Lookup(id)
	s.writeJSON(w, http.StatusOK, viewOf(e))
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req sim.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, joker.ErrUnknownJoker) {
			status = http.StatusNotFound
		}
		s.writeError(w, status, err.Error())
		return
	}

	result, err := s.simulator.Simulate(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	batchID := ""
	if s.store != nil {
		batchID, err = s.persistBatch(result)
		if err != nil {
			s.logger.Error().Err(err).Msg("persist batch failed")
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"batch_id": batchID,
		"result":   result,
	})
}

func (s *Server) persistBatch(res *sim.Result) (string, error) {
	jokers := make([]string, len(res.Echo.Jokers))
	for i, id := range res.Echo.Jokers {
		jokers[i] = string(id)
	}
	batch := &store.BatchRecord{
		Seed:      res.Echo.Seed,
		Jokers:    jokers,
		Runs:      res.Summary.Runs,
		Rounds:    res.Echo.Rounds,
		MeanScore: res.Summary.MeanScore,
		MinScore:  res.Summary.MinScore,
		MaxScore:  res.Summary.MaxScore,
		MeanMoney: res.Summary.MeanMoney,
		ElapsedMs: res.Summary.ElapsedMs,
	}
	outcomes := make([]store.OutcomeRecord, len(res.Outcomes))
	for i, o := range res.Outcomes {
		survivors := make([]string, len(o.Survivors))
		for j, id := range o.Survivors {
			survivors[j] = string(id)
		}
		outcomes[i] = store.OutcomeRecord{
			RunIndex:   o.Index,
			TotalScore: o.TotalScore,
			BestHand:   o.BestHand,
			Money:      o.Money,
			Survivors:  survivors,
		}
	}
	if err := s.store.PutBatch(batch, outcomes); err != nil {
		return "", err
	}
	return batch.ID, nil
}

func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "persistence disabled")
		return
	}
	id := chi.URLParam(r, "id")
	batch, err := s.store.GetBatch(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	outcomes, err := s.store.BatchOutcomes(id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"batch":    batch,
		"outcomes": outcomes,
	})
}
