package dialogue

import (
	"fmt"
	"strings"

	"voiceagents/internal/journal"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
)

const (
	leadGreeting = "Hi, this is Priya! Thanks for reaching out. What brought you to our platform today?"
	leadGoodbye  = "Our team will follow up with you shortly. Have a wonderful day!"
)

// leadFields is the priority order in which missing fields are prompted for.
var leadFields = []struct {
	name   string
	prompt string
}{
	{"name", "Great! And may I have your name please?"},
	{"company", "Perfect! Which company are you with?"},
	{"role", "Wonderful! What's your role there?"},
	{"email", "Excellent! Could I get your business email?"},
	{"use_case", "That sounds interesting! What specific use case are you looking to solve?"},
	{"team_size", "Got it! How large is your team?"},
	{"timeline", "Perfect! When are you looking to implement this?"},
}

var timelinePhrases = []string{
	"this month", "next month", "this quarter", "next quarter",
	"this year", "next year", "asap", "immediately",
}

// LeadFlow collects a qualification record across the turns of one SDR call.
// It has two externally visible states, collecting and idle: the reset back to
// idle happens only on an end-of-conversation phrase with at least one field
// filled, after the lead has been persisted.
type LeadFlow struct {
	started bool
	lead    model.Lead
	convLog []string
	leads   *journal.Log[model.Lead]
}

// NewLeadFlow creates a flow persisting completed leads to the given journal.
func NewLeadFlow(leads *journal.Log[model.Lead]) *LeadFlow {
	return &LeadFlow{leads: leads}
}

// Slots returns the current lead record.
func (f *LeadFlow) Slots() model.Lead {
	return f.lead
}

// Started reports whether the greeting turn has happened.
func (f *LeadFlow) Started() bool {
	return f.started
}

// HandleTurn processes one transcribed utterance and returns the reply to
// speak. The first turn only greets; its content is not used for extraction.
func (f *LeadFlow) HandleTurn(text string) string {
	if !f.started {
		f.started = true
		return leadGreeting
	}

	if EndOfConversation(text) && f.filledCount() > 0 {
		return f.Finish()
	}

	f.convLog = append(f.convLog, "User said: "+text)
	f.extract(text)

	return f.NextPrompt()
}

// NextPrompt returns the canned prompt for the first missing field, or the
// continuation prompt when every field is filled.
func (f *LeadFlow) NextPrompt() string {
	for _, field := range leadFields {
		if f.fieldValue(field.name) == "" {
			return field.prompt
		}
	}
	return "Thank you for that information! Is there anything else you'd like to know about our platform?"
}

// SetField stores a value extracted upstream by the function-calling layer.
// Slots are first-write-wins: a filled field is never overwritten.
func (f *LeadFlow) SetField(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" || f.fieldValue(field) != "" {
		return
	}

	switch field {
	case "name":
		f.lead.Name = value
	case "company":
		f.lead.Company = value
	case "email":
		f.lead.Email = value
	case "role":
		f.lead.Role = value
	case "use_case":
		f.lead.UseCase = value
	case "team_size":
		f.lead.TeamSize = value
	case "timeline":
		f.lead.Timeline = value
	default:
		return
	}
	f.convLog = append(f.convLog, fmt.Sprintf("Collected %s: %s", field, value))
}

// extract runs the keyword tables against one utterance, filling only fields
// that are still empty.
func (f *LeadFlow) extract(text string) {
	// asciiLower keeps byte offsets valid for the use_case slice below
	lower := asciiLower(text)

	f.SetField("email", extractEmail(text))

	// "i'm a developer" is a role, not a name called "A"
	f.SetField("role", extractAfter(text, "i'm a ", "i am a ", "my role is ", "i work as "))
	if name := extractAfter(text, "my name is ", "this is ", "i'm "); !isStopWord(name) {
		f.SetField("name", name)
	}
	f.SetField("company", extractAfter(text, "i work at ", "my company is ", "i'm from ", "i'm with "))

	if containsAny(lower, "team", "people") {
		f.SetField("team_size", firstNumber(text))
	}
	f.SetField("timeline", firstMatch(lower, timelinePhrases...))

	for _, prefix := range []string{"looking to ", "we need ", "trying to "} {
		if idx := strings.Index(lower, prefix); idx >= 0 {
			f.SetField("use_case", strings.TrimSpace(text[idx+len(prefix):]))
			break
		}
	}
}

// Finish persists the lead, resets the slots, and returns the recap reply.
// With nothing collected yet there is nothing to persist and the flow stays in
// its collecting state.
func (f *LeadFlow) Finish() string {
	if f.filledCount() == 0 {
		return f.NextPrompt()
	}
	var fragments []string
	for _, field := range leadFields {
		if v := f.fieldValue(field.name); v != "" {
			fragments = append(fragments, strings.ReplaceAll(field.name, "_", " ")+" is "+v)
		}
	}

	f.lead.ConversationSummary = fmt.Sprintf(
		"Lead qualification call with %s from %s. Role: %s. Use case: %s. Timeline: %s.",
		orUnknown(f.lead.Name, "prospect"),
		orUnknown(f.lead.Company, "unknown company"),
		orUnknown(f.lead.Role, "not specified"),
		orUnknown(f.lead.UseCase, "not specified"),
		orUnknown(f.lead.Timeline, "not specified"),
	)
	f.lead.ConversationLog = f.convLog

	reply := "Thank you so much for your time today! Just to recap: " +
		strings.Join(fragments, ", ") + ". " + leadGoodbye

	if err := f.leads.Append(f.lead); err != nil {
		logger.Error().Err(err).Msg("failed to save lead")
		reply = "Thank you for your time! Our team will be in touch soon."
	}

	f.lead = model.Lead{}
	f.convLog = nil
	return reply
}

func (f *LeadFlow) fieldValue(field string) string {
	switch field {
	case "name":
		return f.lead.Name
	case "company":
		return f.lead.Company
	case "email":
		return f.lead.Email
	case "role":
		return f.lead.Role
	case "use_case":
		return f.lead.UseCase
	case "team_size":
		return f.lead.TeamSize
	case "timeline":
		return f.lead.Timeline
	}
	return ""
}

func (f *LeadFlow) filledCount() int {
	count := 0
	for _, field := range leadFields {
		if f.fieldValue(field.name) != "" {
			count++
		}
	}
	return count
}

func isStopWord(token string) bool {
	switch strings.ToLower(token) {
	case "", "a", "an", "the", "with", "at", "from", "done", "looking", "not", "me", "here":
		return true
	}
	return false
}

func firstNumber(text string) string {
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ".,!?")
		digitsOnly := token != ""
		for _, r := range token {
			if r < '0' || r > '9' {
				digitsOnly = false
				break
			}
		}
		if digitsOnly {
			return token
		}
	}
	return ""
}

func orUnknown(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
