package model

import "time"

// Lead is the qualification record collected during an SDR call.
type Lead struct {
	Name                string    `json:"name"`
	Company             string    `json:"company"`
	Email               string    `json:"email"`
	Role                string    `json:"role"`
	UseCase             string    `json:"use_case"`
	TeamSize            string    `json:"team_size"`
	Timeline            string    `json:"timeline"`
	ConversationSummary string    `json:"conversation_summary"`
	ConversationLog     []string  `json:"conversation_log,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// StampTime fills Timestamp when the lead has not been stamped yet.
func (l *Lead) StampTime(t time.Time) {
	if l.Timestamp.IsZero() {
		l.Timestamp = t
	}
}
