// Package sim runs batches of scripted games in parallel to measure how a
// joker loadout scores. Each worker owns its runs end to end; the only
// shared state is the job channel, the result channel, and atomic progress
// counters.
package sim

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/joker"
	"github.com/jokersim/joker-engine-go/internal/rng"
	"github.com/jokersim/joker-engine-go/internal/run"
)

// Request describes one simulation batch.
type Request struct {
	Seed    string     `json:"seed"`
	Jokers  []joker.ID `json:"jokers"`
	Runs    int        `json:"runs"`
	Rounds  int        `json:"rounds"`
	// HandsPerRound defaults to the run default when zero.
	HandsPerRound int `json:"hands_per_round,omitempty"`
	StartingMoney int64 `json:"starting_money,omitempty"`
	TimeoutMs     int   `json:"timeout_ms,omitempty"`
}

// Validate rejects requests the simulator cannot honor.
func (r Request) Validate() error {
	if r.Runs <= 0 {
		return fmt.Errorf("sim: runs must be positive, got %d", r.Runs)
	}
	if r.Rounds <= 0 {
		return fmt.Errorf("sim: rounds must be positive, got %d", r.Rounds)
	}
	reg := joker.Default()
	for _, id := range r.Jokers {
		if _, ok := reg.Lookup(id); !ok {
			return fmt.Errorf("sim: %w: %q", joker.ErrUnknownJoker, id)
		}
	}
	return nil
}

// RunOutcome is the terminal state of one simulated run.
type RunOutcome struct {
	Index      int        `json:"index"`
	TotalScore int64      `json:"total_score"`
	BestHand   int64      `json:"best_hand"`
	Money      int64      `json:"money"`
	Survivors  []joker.ID `json:"survivors"`
	HookErrors int        `json:"hook_errors,omitempty"`
}

// Summary aggregates a whole batch.
type Summary struct {
	Runs       int     `json:"runs"`
	MeanScore  float64 `json:"mean_score"`
	MinScore   int64   `json:"min_score"`
	MaxScore   int64   `json:"max_score"`
	MeanMoney  float64 `json:"mean_money"`
	TimedOut   bool    `json:"timed_out,omitempty"`
	ElapsedMs  int64   `json:"elapsed_ms"`
}

// Result is a completed batch.
type Result struct {
	Outcomes []RunOutcome `json:"outcomes"`
	Summary  Summary      `json:"summary"`
	Echo     Request      `json:"echo"`
}

// Simulator fans a batch out over a worker pool.
type Simulator struct {
	workers int
	log     zerolog.Logger
}

// New sizes the pool to the machine.
func New(log zerolog.Logger) *Simulator {
	return &Simulator{workers: runtime.GOMAXPROCS(0), log: log}
}

type job struct {
	first, last int // inclusive run indices
}

// Simulate plays the batch and aggregates outcomes. Identical requests
// produce identical results: every run derives its randomness from the
// request seed and its own index, never from pool scheduling.
func (s *Simulator) Simulate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}
	started := time.Now()

	jobs := make(chan job, s.workers*2)
	outcomes := make(chan RunOutcome, 256)
	var completed uint64
	var wg sync.WaitGroup

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case jb, ok := <-jobs:
					if !ok {
						return
					}
					for i := jb.first; i <= jb.last; i++ {
						select {
						case <-ctx.Done():
							return
						default:
						}
						out := s.playRun(req, i)
						atomic.AddUint64(&completed, 1)
						select {
						case outcomes <- out:
						case <-ctx.Done():
							return
						}
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		const batch = 16
		for first := 0; first < req.Runs; first += batch {
			last := first + batch - 1
			if last >= req.Runs {
				last = req.Runs - 1
			}
			select {
			case jobs <- job{first: first, last: last}:
			case <-ctx.Done():
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(outcomes)
		close(done)
	}()

	res := &Result{Echo: req}
	timedOut := false
	for out := range outcomes {
		res.Outcomes = append(res.Outcomes, out)
	}
	select {
	case <-ctx.Done():
		timedOut = ctx.Err() == context.DeadlineExceeded
	default:
	}
	<-done

	// Outcome order must not depend on worker scheduling.
	sortOutcomes(res.Outcomes)
	res.Summary = summarize(res.Outcomes, timedOut, time.Since(started))
	s.log.Info().
		Int("runs", len(res.Outcomes)).
		Int64("elapsed_ms", res.Summary.ElapsedMs).
		Bool("timed_out", timedOut).
		Msg("simulation batch done")
	return res, nil
}

// playRun plays one scripted run: acquire the loadout, then for each round
// deal and play hands from a per-run deterministic deck.
func (s *Simulator) playRun(req Request, index int) RunOutcome {
	seed := fmt.Sprintf("%s#%d", req.Seed, index)
	r := run.New(run.Config{
		Seed:          seed,
		StartingMoney: req.StartingMoney,
		HandsPerRound: req.HandsPerRound,
		MaxJokerSlots: len(req.Jokers) + 1,
		Logger:        zerolog.Nop(),
	})
	out := RunOutcome{Index: index}
	for _, id := range req.Jokers {
		if _, err := r.Acquire(id, nil); err != nil {
			// Validate covered unknown ids; construction args failures
			// count as hook-level trouble and the run continues short.
			out.HookErrors++
		}
	}

	deckRand := rng.New(seed, "deck")
	hands := req.HandsPerRound
	if hands == 0 {
		hands = 4
	}
	for round := 0; round < req.Rounds; round++ {
		for h := 0; h < hands; h++ {
			hand := dealHand(deckRand)
			hr, err := r.PlayHand(hand)
			if err != nil {
				break
			}
			out.TotalScore += hr.Score
			if hr.Score > out.BestHand {
				out.BestHand = hr.Score
			}
			out.HookErrors += len(hr.HookErrors)
		}
		r.EndRound()
		r.StartRound()
	}
	out.Money = r.Money()
	out.Survivors = r.JokerIDs()
	return out
}

// dealHand draws five distinct cards from a fresh 52-card ordering.
func dealHand(src *rng.Source) cards.Hand {
	deck := make([]cards.Card, 0, 52)
	for s := cards.Spade; s <= cards.Diamond; s++ {
		for rk := cards.Two; rk <= cards.Ace; rk++ {
			deck = append(deck, cards.Card{Rank: rk, Suit: s})
		}
	}
	src.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return cards.Hand{Cards: deck[:5]}
}

func sortOutcomes(outs []RunOutcome) {
	sort.Slice(outs, func(i, j int) bool { return outs[i].Index < outs[j].Index })
}

func summarize(outs []RunOutcome, timedOut bool, elapsed time.Duration) Summary {
	sum := Summary{Runs: len(outs), TimedOut: timedOut, ElapsedMs: elapsed.Milliseconds()}
	if len(outs) == 0 {
		return sum
	}
	sum.MinScore = outs[0].TotalScore
	sum.MaxScore = outs[0].TotalScore
	var scoreTotal, moneyTotal int64
	for _, o := range outs {
		if o.TotalScore < sum.MinScore {
			sum.MinScore = o.TotalScore
		}
		if o.TotalScore > sum.MaxScore {
			sum.MaxScore = o.TotalScore
		}
		scoreTotal += o.TotalScore
		moneyTotal += o.Money
	}
	sum.MeanScore = float64(scoreTotal) / float64(len(outs))
	sum.MeanMoney = float64(moneyTotal) / float64(len(outs))
	return sum
}
