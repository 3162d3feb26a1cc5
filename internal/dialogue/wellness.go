package dialogue

import (
	"fmt"
	"strings"

	"voiceagents/internal/journal"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
)

// WellnessFlow runs the daily check-in: mood, energy, stressors, and at least
// one goal. Once every field is present the entry is saved and the flow resets
// for the next session.
type WellnessFlow struct {
	state model.WellnessEntry
	log   *journal.Log[model.WellnessEntry]
}

// NewWellnessFlow creates a flow appending completed check-ins to the given
// journal.
func NewWellnessFlow(log *journal.Log[model.WellnessEntry]) *WellnessFlow {
	return &WellnessFlow{log: log}
}

// State returns the current check-in record.
func (f *WellnessFlow) State() model.WellnessEntry {
	return f.state
}

// Update stores one field reported by the function-calling layer and returns
// the next reply. Goals accumulate as a list with duplicates dropped; the
// other fields are first-write-wins.
func (f *WellnessFlow) Update(field, value string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		switch field {
		case "goals":
			f.addGoal(value)
		case "mood":
			if f.state.Mood == "" {
				f.state.Mood = value
			}
		case "energy":
			if f.state.Energy == "" {
				f.state.Energy = value
			}
		case "stressors":
			if f.state.Stressors == "" {
				f.state.Stressors = value
			}
		}
	}

	if f.complete() {
		return f.finish()
	}

	switch {
	case f.state.Mood == "":
		return "How are you feeling today?"
	case f.state.Energy == "":
		return "What's your energy level like?"
	case f.state.Stressors == "":
		return "What's causing you stress or concern today?"
	case len(f.state.Goals) == 0:
		return "What are 1-3 wellness goals you'd like to focus on today?"
	}
	return "Anything else you'd like to add?"
}

func (f *WellnessFlow) addGoal(goal string) {
	for _, existing := range f.state.Goals {
		if existing == goal {
			return
		}
	}
	f.state.Goals = append(f.state.Goals, goal)
}

func (f *WellnessFlow) complete() bool {
	return f.state.Mood != "" && f.state.Energy != "" &&
		f.state.Stressors != "" && len(f.state.Goals) > 0
}

// finish composes the recap, appends the entry to the wellness log, and resets
// the flow. A failed write still resets; the reply tells the user the session
// was not saved.
func (f *WellnessFlow) finish() string {
	goals := strings.Join(f.state.Goals, ", ")
	f.state.Summary = fmt.Sprintf("Feeling %s with %s energy, and focused on %s today.",
		f.state.Mood, f.state.Energy, goals)

	reply := fmt.Sprintf("Thank you for sharing. Here's your recap: %s Your wellness session has been saved!",
		f.state.Summary)
	if err := f.log.Append(f.state); err != nil {
		logger.Error().Err(err).Msg("failed to save wellness entry")
		reply = fmt.Sprintf("Thank you for sharing. Here's your recap: %s I couldn't save today's session, but we can pick this up tomorrow.",
			f.state.Summary)
	}

	f.state = model.WellnessEntry{}
	return reply
}
