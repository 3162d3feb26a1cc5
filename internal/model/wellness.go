package model

import "time"

// WellnessEntry is one completed daily check-in.
type WellnessEntry struct {
	Mood      string    `json:"mood"`
	Energy    string    `json:"energy"`
	Stressors string    `json:"stressors"`
	Goals     []string  `json:"goals"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

// StampTime fills Timestamp when the entry has not been stamped yet.
func (w *WellnessEntry) StampTime(t time.Time) {
	if w.Timestamp.IsZero() {
		w.Timestamp = t
	}
}
