package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/sim"
)

func testHandler() http.Handler {
	return NewServer(nil, zerolog.Nop()).Routes()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count  int         `json:"count"`
		Jokers []entryView `json:"jokers"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, joker.Default().Len(), body.Count)
	assert.Len(t, body.Jokers, body.Count)
}

func TestListRegistryRarityFilter(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry?rarity=Legendary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Jokers []entryView `json:"jokers"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	for _, v := range body.Jokers {
		assert.Equal(t, "Legendary", v.Rarity)
	}

	rec = httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry?rarity=Mythic", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRegistryEntry(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry/joker", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var v entryView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	assert.Equal(t, joker.TheJoker, v.ID)
	assert.Equal(t, "Joker", v.Name)

	rec = httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/registry/not_real", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulateEndpoint(t *testing.T) {
	req := sim.Request{
		Seed:   "API",
		Jokers: []joker.ID{joker.TheJoker},
		Runs:   4,
		Rounds: 1,
	}
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulate", bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result sim.Result `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Result.Outcomes, 4)
}

func TestSimulateRejectsBadRequests(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulate", bytes.NewBufferString("{nope")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload := `{"seed":"X","jokers":["fake_one"],"runs":1,"rounds":1}`
	rec = httptest.NewRecorder()
	testHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulate", bytes.NewBufferString(payload)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
