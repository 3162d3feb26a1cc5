package agent

import (
	"context"

	"voiceagents/internal/dialogue"
	"voiceagents/internal/model"
	"voiceagents/internal/session"
)

// BaristaConfig wires a coffee-ordering session's collaborators.
type BaristaConfig struct {
	OrdersDir   string
	Publisher   Publisher
	Transcripts session.Store
	SessionID   string
}

// Barista takes one customer's drink order.
type Barista struct {
	flow      *dialogue.CoffeeFlow
	pub       Publisher
	store     session.Store
	sessionID string
}

// NewBarista creates a coffee-ordering session.
func NewBarista(cfg BaristaConfig) *Barista {
	return &Barista{
		flow:      dialogue.NewCoffeeFlow(cfg.OrdersDir),
		pub:       cfg.Publisher,
		store:     cfg.Transcripts,
		sessionID: cfg.SessionID,
	}
}

// Order returns the order slip as filled so far.
func (a *Barista) Order() model.CoffeeOrder {
	return a.flow.Order()
}

// HandleTurn processes one utterance through the coffee flow.
func (a *Barista) HandleTurn(ctx context.Context, text string) string {
	reply := a.flow.HandleTurn(text)
	publish(ctx, a.pub, Event{Type: "coffee_order", Payload: a.flow.Order()})
	recordTurn(ctx, a.store, a.sessionID, text, reply)
	return reply
}
