package run

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/joker"
)

// SaveVersion tags the whole-run save schema. Loaders reject anything
// newer than what they understand.
const SaveVersion = 1

type savedJoker struct {
	ID    joker.ID        `json:"id"`
	Args  joker.Args      `json:"args,omitempty"`
	Bonus int64           `json:"sell_bonus,omitempty"`
	State json.RawMessage `json:"state,omitempty"`
}

type saveBlob struct {
	Version int   `json:"version"`
	Seed    string `json:"seed"`

	Money int64 `json:"money"`
	Ante  int   `json:"ante"`
	Round int   `json:"round"`

	HandsPlayedRound  int `json:"hands_played_round"`
	DiscardsUsedRound int `json:"discards_used_round"`
	HandsPlayedTotal  int `json:"hands_played_total"`

	HandTypeCounts map[cards.HandRank]int `json:"hand_type_counts,omitempty"`

	CardsInDeck      int  `json:"cards_in_deck"`
	StoneCardsInDeck int  `json:"stone_cards_in_deck"`
	SteelCardsInDeck int  `json:"steel_cards_in_deck,omitempty"`
	PacksSkipped     int  `json:"packs_skipped,omitempty"`
	BlindsSkipped    int  `json:"blinds_skipped,omitempty"`
	HasWon           bool `json:"has_won"`

	Jokers []savedJoker    `json:"jokers"`
	States json.RawMessage `json:"states,omitempty"`
}

// SerializeAll snapshots the run, including per-instance state for every
// joker exposing the state capability. Output is deterministic for a given
// run state.
func (r *Run) SerializeAll() ([]byte, error) {
	blob := saveBlob{
		Version:           SaveVersion,
		Seed:              r.cfg.Seed,
		Money:             r.money,
		Ante:              r.ante,
		Round:             r.round,
		HandsPlayedRound:  r.handsPlayedRound,
		DiscardsUsedRound: r.discardsUsedRound,
		HandsPlayedTotal:  r.handsPlayedTotal,
		HandTypeCounts:    r.handTypeCounts,
		CardsInDeck:       r.cardsInDeck,
		StoneCardsInDeck:  r.stoneCardsInDeck,
		SteelCardsInDeck:  r.steelCardsInDeck,
		PacksSkipped:      r.packsSkipped,
		BlindsSkipped:     r.blindsSkipped,
		HasWon:            r.hasWon,
	}
	for _, inst := range r.instances {
		sj := savedJoker{ID: inst.j.ID(), Args: inst.args, Bonus: inst.sellBonus}
		if st, ok := joker.SupportsState(inst.j); ok {
			raw, err := st.SerializeState()
			if err != nil {
				return nil, fmt.Errorf("run: serialize %s: %w", inst.j.ID(), err)
			}
			sj.State = raw
		}
		blob.Jokers = append(blob.Jokers, sj)
	}
	states, err := json.Marshal(r.states)
	if err != nil {
		return nil, fmt.Errorf("run: serialize states: %w", err)
	}
	blob.States = states
	return json.Marshal(blob)
}

// LoadFailure records one joker entry that could not be restored. The rest
// of the run loads without it.
type LoadFailure struct {
	ID  joker.ID
	Err error
}

// LoadReport summarizes a restore: how many instances came back and which
// entries were dropped.
type LoadReport struct {
	Restored int
	Failed   []LoadFailure
}

// DeserializeAll restores a run from a save blob. A payload versioned
// newer than this build returns ErrUnsupportedVersion and changes nothing.
// Per-entry failures are reported and skipped rather than aborting the
// whole load.
func (r *Run) DeserializeAll(data []byte) (LoadReport, error) {
	var blob saveBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return LoadReport{}, fmt.Errorf("run: %w: %v", joker.ErrBadState, err)
	}
	if blob.Version > SaveVersion {
		return LoadReport{}, fmt.Errorf("run: %w: save version %d, build supports %d",
			joker.ErrUnsupportedVersion, blob.Version, SaveVersion)
	}

	// Decode the states blob before touching any run field, so a corrupt
	// save leaves the run exactly as it was.
	states := joker.NewStateStore()
	if len(blob.States) > 0 {
		if err := json.Unmarshal(blob.States, states); err != nil {
			return LoadReport{}, fmt.Errorf("run: %w: states: %v", joker.ErrBadState, err)
		}
	}

	r.cfg.Seed = blob.Seed
	r.money = blob.Money
	r.ante = blob.Ante
	r.round = blob.Round
	r.handsPlayedRound = blob.HandsPlayedRound
	r.discardsUsedRound = blob.DiscardsUsedRound
	r.handsPlayedTotal = blob.HandsPlayedTotal
	r.handTypeCounts = blob.HandTypeCounts
	if r.handTypeCounts == nil {
		r.handTypeCounts = make(map[cards.HandRank]int)
	}
	r.cardsInDeck = blob.CardsInDeck
	r.stoneCardsInDeck = blob.StoneCardsInDeck
	r.steelCardsInDeck = blob.SteelCardsInDeck
	r.packsSkipped = blob.PacksSkipped
	r.blindsSkipped = blob.BlindsSkipped
	r.hasWon = blob.HasWon

	r.col = joker.NewCollection()
	r.instances = nil
	r.states = states

	var report LoadReport
	for _, sj := range blob.Jokers {
		j, err := joker.NewWithArgs(sj.ID, sj.Args)
		if err != nil {
			report.Failed = append(report.Failed, LoadFailure{ID: sj.ID, Err: err})
			r.log.Warn().Str("joker", string(sj.ID)).Err(err).Msg("save entry skipped")
			continue
		}
		if len(sj.State) > 0 {
			if st, ok := joker.SupportsState(j); ok {
				if err := st.DeserializeState(sj.State); err != nil {
					report.Failed = append(report.Failed, LoadFailure{ID: sj.ID, Err: err})
					r.log.Warn().Str("joker", string(sj.ID)).Err(err).Msg("save entry skipped")
					continue
				}
			}
		}
		r.col.Add(j)
		r.instances = append(r.instances, &instance{
			handle:    uuid.New(),
			args:      sj.Args,
			j:         j,
			sellBonus: sj.Bonus,
		})
		report.Restored++
	}
	return report, nil
}
