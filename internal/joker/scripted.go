package joker

import (
	"encoding/json"
	"fmt"

	"github.com/dop251/goja"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// ScriptedJoker evaluates a JavaScript expression against a read-only view
// of the context to produce its effect. It backs custom, data-driven joker
// definitions: the script ships in the construction arguments, not in code.
//
// The script sees `ctx` (hand, accumulators, progression) and `counters`
// (its persistent state, writable) and returns an object with any of
// chips, mult, xmult, money set. A script error surfaces through the hook
// error path and scores as the identity effect.
type ScriptedJoker struct {
	Base
	NoLifecycle

	source   string
	program  *goja.Program
	vm       *goja.Runtime
	counters map[string]float64
}

var _ interface {
	Identity
	Gameplay
	State
} = (*ScriptedJoker)(nil)

// NewScripted compiles a scripted joker. The source must be an expression
// or an IIFE producing the effect object.
func NewScripted(base Base, source string) (*ScriptedJoker, error) {
	if source == "" {
		return nil, fmt.Errorf("scripted joker %s: empty script", base.ID())
	}
	program, err := goja.Compile(string(base.ID()), source, true)
	if err != nil {
		return nil, fmt.Errorf("scripted joker %s: compile: %w", base.ID(), err)
	}
	return &ScriptedJoker{
		Base:     base,
		source:   source,
		program:  program,
		vm:       goja.New(),
		counters: make(map[string]float64),
	}, nil
}

type scriptCtx struct {
	Chips       int64  `json:"chips"`
	Mult        int64  `json:"mult"`
	Money       int64  `json:"money"`
	Ante        int    `json:"ante"`
	Round       int    `json:"round"`
	HandType    string `json:"handType"`
	CardsPlayed int    `json:"cardsPlayed"`
	Discards    int    `json:"discardsRemaining"`
	CardRank    string `json:"cardRank,omitempty"`
	CardSuit    string `json:"cardSuit,omitempty"`
}

type scriptResult struct {
	Chips int64   `json:"chips"`
	Mult  int64   `json:"mult"`
	XMult float64 `json:"xmult"`
	Money int64   `json:"money"`
}

func (s *ScriptedJoker) run(view scriptCtx) (effect.Effect, error) {
	if err := s.vm.Set("ctx", view); err != nil {
		return effect.Identity(), fmt.Errorf("scripted joker %s: %w", s.ID(), err)
	}
	if err := s.vm.Set("counters", s.counters); err != nil {
		return effect.Identity(), fmt.Errorf("scripted joker %s: %w", s.ID(), err)
	}
	val, err := s.vm.RunProgram(s.program)
	if err != nil {
		return effect.Identity(), fmt.Errorf("scripted joker %s: script: %w", s.ID(), err)
	}
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return effect.Identity(), nil
	}
	var res scriptResult
	if err := s.vm.ExportTo(val, &res); err != nil {
		return effect.Identity(), fmt.Errorf("scripted joker %s: result: %w", s.ID(), err)
	}
	return effect.Effect{
		Chips:     res.Chips,
		Mult:      res.Mult,
		MultTimes: res.XMult,
		Money:     res.Money,
	}, nil
}

func (s *ScriptedJoker) view(ctx *Context) scriptCtx {
	return scriptCtx{
		Chips:       ctx.Chips(),
		Mult:        ctx.Mult(),
		Money:       ctx.Money(),
		Ante:        ctx.Ante(),
		Round:       ctx.Round(),
		HandType:    ctx.HandRank().String(),
		CardsPlayed: ctx.Hand().Len(),
		Discards:    ctx.DiscardsRemaining(),
	}
}

func (s *ScriptedJoker) OnHandPlayed(ctx *Context) (effect.Effect, error) {
	return s.run(s.view(ctx))
}

func (s *ScriptedJoker) OnCardScored(ctx *Context, card cards.Card, _ int) (effect.Effect, error) {
	view := s.view(ctx)
	view.CardRank = card.Rank.String()
	view.CardSuit = card.Suit.String()
	return s.run(view)
}

// SerializeState persists the script counters alongside the source so a
// reload reconstructs the same behavior.
func (s *ScriptedJoker) SerializeState() (json.RawMessage, error) {
	return json.Marshal(scriptedState{
		Version:  advancedStateVersion,
		Source:   s.source,
		Counters: s.counters,
	})
}

type scriptedState struct {
	Version  int                `json:"version"`
	Source   string             `json:"source"`
	Counters map[string]float64 `json:"counters"`
}

// DeserializeState restores counters and recompiles the embedded script.
// Validation completes before any field is written.
func (s *ScriptedJoker) DeserializeState(data json.RawMessage) error {
	var st scriptedState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if st.Version > advancedStateVersion {
		return fmt.Errorf("%w: got v%d, max v%d", ErrUnsupportedVersion, st.Version, advancedStateVersion)
	}
	if st.Source == "" {
		return fmt.Errorf("%w: missing script source", ErrBadState)
	}
	program, err := goja.Compile(string(s.ID()), st.Source, true)
	if err != nil {
		return fmt.Errorf("%w: script does not compile: %v", ErrBadState, err)
	}
	if st.Counters == nil {
		st.Counters = make(map[string]float64)
	}
	s.source = st.Source
	s.program = program
	s.counters = st.Counters
	return nil
}
