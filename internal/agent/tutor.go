package agent

import (
	"context"
	"fmt"
	"strings"

	"voiceagents/internal/session"
	"voiceagents/internal/tutor"
)

// TutorConfig wires a tutoring session's collaborators.
type TutorConfig struct {
	Content     *tutor.Content
	Publisher   Publisher
	Transcripts session.Store
	SessionID   string
}

// Tutor walks a student through the loaded course concepts.
type Tutor struct {
	content   *tutor.Content
	pub       Publisher
	store     session.Store
	sessionID string
	current   string
}

// NewTutor creates a tutoring session over the loaded course content.
func NewTutor(cfg TutorConfig) *Tutor {
	return &Tutor{
		content:   cfg.Content,
		pub:       cfg.Publisher,
		store:     cfg.Transcripts,
		sessionID: cfg.SessionID,
	}
}

// ListConcepts names every concept available in the course content.
func (a *Tutor) ListConcepts() string {
	ids := a.content.AvailableConcepts()
	if len(ids) == 0 {
		return "I don't have any course material loaded right now."
	}
	return "We can go through: " + strings.Join(ids, ", ") + ". Which one would you like to start with?"
}

// ExplainConcept selects a concept by id (or the first one when the id is
// empty or unknown) and explains it.
func (a *Tutor) ExplainConcept(ctx context.Context, conceptID string) string {
	concept, ok := a.content.Select(conceptID)
	if !ok {
		return "I don't have any course material loaded right now."
	}

	a.current = concept.ID
	publish(ctx, a.pub, Event{Type: "tutor_concept", Payload: concept})
	recordTurn(ctx, a.store, a.sessionID, conceptID, concept.Title)

	reply := fmt.Sprintf("Let's talk about %s. %s", concept.Title, concept.Explanation)
	if concept.Example != "" {
		reply += " For example: " + concept.Example
	}
	return reply
}

// CurrentConcept returns the id of the concept being taught, or "".
func (a *Tutor) CurrentConcept() string {
	return a.current
}
