// Package agent contains the conversation handlers themselves: thin
// state-holding wrappers that take a transcribed utterance (or a parameter set
// extracted upstream), consult the catalog, cart, and dialogue flows, and
// produce the reply to be spoken. One agent instance serves one session;
// sharing an instance across sessions corrupts its state.
package agent

import (
	"context"
	"time"

	"voiceagents/internal/logger"
	"voiceagents/internal/session"
)

// recordTurn appends the user utterance and the reply to the session
// transcript. Transcript failures are logged and otherwise ignored; the
// conversation itself never depends on them.
func recordTurn(ctx context.Context, store session.Store, sessionID, userText, reply string) {
	if store == nil || sessionID == "" {
		return
	}

	now := time.Now()
	if err := store.Append(ctx, sessionID, session.Message{Role: "user", Content: userText, At: now}); err != nil {
		logger.Warn().Err(err).Str("session", sessionID).Msg("failed to record user turn")
		return
	}
	if err := store.Append(ctx, sessionID, session.Message{Role: "assistant", Content: reply, At: now}); err != nil {
		logger.Warn().Err(err).Str("session", sessionID).Msg("failed to record assistant turn")
	}
}

func publish(ctx context.Context, pub Publisher, event Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Str("event", event.Type).Msg("failed to publish room event")
	}
}
