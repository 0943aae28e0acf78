package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate())
	return st
}

func TestSaveRoundTrip(t *testing.T) {
	st := openTestStore(t)

	payload := []byte(`{"version":1,"seed":"ABC","money":12}`)
	id, err := st.PutSave("slot1", "ABC", 1, payload)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := st.GetSave(id)
	require.NoError(t, err)
	assert.Equal(t, "slot1", rec.Name)
	assert.Equal(t, "ABC", rec.Seed)
	assert.Equal(t, 1, rec.SaveVersion)
	assert.JSONEq(t, string(payload), string(rec.Payload))
}

func TestLatestSave(t *testing.T) {
	st := openTestStore(t)

	_, err := st.PutSave("slot1", "A", 1, []byte(`{"n":1}`))
	require.NoError(t, err)
	_, err = st.PutSave("slot1", "B", 1, []byte(`{"n":2}`))
	require.NoError(t, err)

	rec, err := st.LatestSave("slot1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(rec.Payload))

	_, err = st.LatestSave("missing")
	require.Error(t, err)
}

func TestGetSaveMissing(t *testing.T) {
	st := openTestStore(t)
	_, err := st.GetSave("nope")
	require.Error(t, err)
}

func TestBatchRoundTrip(t *testing.T) {
	st := openTestStore(t)

	batch := &BatchRecord{
		Seed:      "BATCH",
		Jokers:    []string{"joker", "green_joker"},
		Runs:      2,
		Rounds:    3,
		MeanScore: 150.5,
		MinScore:  100,
		MaxScore:  201,
		MeanMoney: 8,
		ElapsedMs: 12,
	}
	outcomes := []OutcomeRecord{
		{RunIndex: 0, TotalScore: 100, BestHand: 60, Money: 6, Survivors: []string{"joker"}},
		{RunIndex: 1, TotalScore: 201, BestHand: 90, Money: 10, Survivors: []string{"joker", "green_joker"}},
	}
	require.NoError(t, st.PutBatch(batch, outcomes))
	require.NotEmpty(t, batch.ID)

	got, err := st.GetBatch(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch.Seed, got.Seed)
	assert.Equal(t, batch.Jokers, got.Jokers)
	assert.Equal(t, batch.MeanScore, got.MeanScore)

	gotOutcomes, err := st.BatchOutcomes(batch.ID)
	require.NoError(t, err)
	require.Len(t, gotOutcomes, 2)
	assert.Equal(t, outcomes[0].Survivors, gotOutcomes[0].Survivors)
	assert.Equal(t, int64(201), gotOutcomes[1].TotalScore)
}
