package agent

import (
	"context"
	"strings"

	"voiceagents/internal/dialogue"
	"voiceagents/internal/journal"
	"voiceagents/internal/model"
	"voiceagents/internal/session"
)

const wellnessGreeting = "Hi, good to see you again. How are you feeling today?"

// WellnessConfig wires a check-in session's collaborators.
type WellnessConfig struct {
	Log         *journal.Log[model.WellnessEntry]
	Publisher   Publisher
	Transcripts session.Store
	SessionID   string
}

// Wellness is the daily check-in companion for one session.
type Wellness struct {
	flow      *dialogue.WellnessFlow
	pub       Publisher
	store     session.Store
	sessionID string
	started   bool
}

// NewWellness creates a check-in session over the shared wellness log.
func NewWellness(cfg WellnessConfig) *Wellness {
	return &Wellness{
		flow:      dialogue.NewWellnessFlow(cfg.Log),
		pub:       cfg.Publisher,
		store:     cfg.Transcripts,
		sessionID: cfg.SessionID,
	}
}

// State returns the check-in record as filled so far.
func (a *Wellness) State() model.WellnessEntry {
	return a.flow.State()
}

// Update stores one wellness field reported by the function-calling layer and
// returns the next question, or the recap once the check-in is complete.
func (a *Wellness) Update(ctx context.Context, field, value string) string {
	reply := a.flow.Update(field, value)
	publish(ctx, a.pub, Event{Type: "wellness_state", Payload: a.flow.State()})
	recordTurn(ctx, a.store, a.sessionID, value, reply)
	return reply
}

// HandleTurn processes a raw utterance: the first turn greets, later turns are
// stored into the first missing field in question order.
func (a *Wellness) HandleTurn(ctx context.Context, text string) string {
	if !a.started {
		a.started = true
		recordTurn(ctx, a.store, a.sessionID, text, wellnessGreeting)
		return wellnessGreeting
	}

	// Without the function-calling layer the answer fills whichever field the
	// last question asked for.
	state := a.flow.State()
	field := "mood"
	switch {
	case state.Mood == "":
		field = "mood"
	case state.Energy == "":
		field = "energy"
	case state.Stressors == "":
		field = "stressors"
	default:
		field = "goals"
	}

	reply := a.flow.Update(field, strings.TrimSpace(text))
	publish(ctx, a.pub, Event{Type: "wellness_state", Payload: a.flow.State()})
	recordTurn(ctx, a.store, a.sessionID, text, reply)
	return reply
}
