package agent

import (
	"context"

	"voiceagents/internal/dialogue"
	"voiceagents/internal/faq"
	"voiceagents/internal/journal"
	"voiceagents/internal/model"
	"voiceagents/internal/session"
)

// SDRConfig wires a lead-qualification session's collaborators.
type SDRConfig struct {
	FAQ         *faq.Store
	Leads       *journal.Log[model.Lead]
	Transcripts session.Store
	SessionID   string
}

// SDR is the sales development agent for one call: it answers company
// questions from the FAQ while the lead flow collects qualification fields.
type SDR struct {
	faq       *faq.Store
	flow      *dialogue.LeadFlow
	store     session.Store
	sessionID string
}

// NewSDR creates a lead-qualification session.
func NewSDR(cfg SDRConfig) *SDR {
	return &SDR{
		faq:       cfg.FAQ,
		flow:      dialogue.NewLeadFlow(cfg.Leads),
		store:     cfg.Transcripts,
		sessionID: cfg.SessionID,
	}
}

// Lead returns the lead record as collected so far.
func (a *SDR) Lead() model.Lead {
	return a.flow.Slots()
}

// AnswerFromFAQ answers a company question from the FAQ content.
func (a *SDR) AnswerFromFAQ(ctx context.Context, question string) string {
	reply := a.faq.Answer(question)
	recordTurn(ctx, a.store, a.sessionID, question, reply)
	return reply
}

// CollectField stores a field value extracted by the function-calling layer
// and returns the prompt for the next missing field.
func (a *SDR) CollectField(ctx context.Context, field, value string) string {
	a.flow.SetField(field, value)

	// The value itself can carry the wind-down ("thanks, that's all")
	var reply string
	if dialogue.EndOfConversation(value) {
		reply = a.flow.Finish()
	} else {
		reply = a.flow.NextPrompt()
	}

	recordTurn(ctx, a.store, a.sessionID, value, reply)
	return reply
}

// HandleTurn processes one raw utterance through the lead flow.
func (a *SDR) HandleTurn(ctx context.Context, text string) string {
	reply := a.flow.HandleTurn(text)
	recordTurn(ctx, a.store, a.sessionID, text, reply)
	return reply
}
