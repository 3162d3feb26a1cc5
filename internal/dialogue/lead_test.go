package dialogue

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceagents/internal/journal"
	"voiceagents/internal/model"
)

func newLeadFlow(t *testing.T) (*LeadFlow, *journal.Log[model.Lead]) {
	t.Helper()
	log := journal.New[model.Lead](filepath.Join(t.TempDir(), "leads.json"))
	return NewLeadFlow(log), log
}

func TestFirstTurnGreetsWithoutConsumingContent(t *testing.T) {
	flow, _ := newLeadFlow(t)

	reply := flow.HandleTurn("my name is Alice")
	assert.Equal(t, leadGreeting, reply)
	assert.Empty(t, flow.Slots().Name, "greeting turn content is not extracted")
}

func TestNameExtractionAndPromptOrder(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	reply := flow.HandleTurn("my name is alice")
	assert.Equal(t, "Alice", flow.Slots().Name)
	assert.Contains(t, reply, "company", "next missing field is company")
}

func TestFirstWriteWins(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("my name is Alice")
	flow.HandleTurn("my name is Bob")
	assert.Equal(t, "Alice", flow.Slots().Name)
}

func TestEmailExtraction(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("you can reach me at alice@example.com anytime")
	assert.Equal(t, "alice@example.com", flow.Slots().Email)

	flow.HandleTurn("also try bob@example.org")
	assert.Equal(t, "alice@example.com", flow.Slots().Email)
}

func TestRoleBeatsNameForIndefiniteArticle(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("i'm a developer")
	assert.Equal(t, "Developer", flow.Slots().Role)
	assert.Empty(t, flow.Slots().Name)
}

func TestCompanyAndTimelineExtraction(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("i work at acme, hoping to roll this out next quarter")
	assert.Equal(t, "Acme", flow.Slots().Company)
	assert.Equal(t, "next quarter", flow.Slots().Timeline)
}

func TestTeamSizeExtraction(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("our team has 12 people")
	assert.Equal(t, "12", flow.Slots().TeamSize)
}

func TestEndPhraseWithoutAnyFieldKeepsCollecting(t *testing.T) {
	flow, log := newLeadFlow(t)
	flow.HandleTurn("hello")

	flow.HandleTurn("thanks, goodbye")
	assert.Empty(t, log.Load(), "nothing collected, nothing persisted")
}

func TestEndOfConversationPersistsAndResets(t *testing.T) {
	flow, log := newLeadFlow(t)
	flow.HandleTurn("hello")
	flow.HandleTurn("my name is Alice")
	flow.HandleTurn("i work at Acme")

	reply := flow.HandleTurn("that's all, thank you")
	assert.Contains(t, reply, "name is Alice")
	assert.Contains(t, reply, "company is Acme")

	entries := log.Load()
	require.Len(t, entries, 1, "exactly one lead appended")
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "Acme", entries[0].Company)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.NotEmpty(t, entries[0].ConversationSummary)

	// slots fully reset, flow keeps collecting
	assert.Equal(t, model.Lead{}, flow.Slots())
}

func TestSetFieldIgnoresUnknownAndEmpty(t *testing.T) {
	flow, _ := newLeadFlow(t)

	flow.SetField("name", "  ")
	flow.SetField("favorite_color", "green")
	assert.Equal(t, model.Lead{}, flow.Slots())

	flow.SetField("use_case", "support automation")
	assert.Equal(t, "support automation", flow.Slots().UseCase)
}

func TestAllFieldsFilledContinuationPrompt(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	for field, value := range map[string]string{
		"name": "Alice", "company": "Acme", "email": "a@b.co", "role": "CTO",
		"use_case": "support", "team_size": "12", "timeline": "asap",
	} {
		flow.SetField(field, value)
	}

	reply := flow.NextPrompt()
	assert.Contains(t, reply, "anything else")
}

func TestExtractionSurvivesNonASCIITranscripts(t *testing.T) {
	flow, _ := newLeadFlow(t)
	flow.HandleTurn("hello")

	// transcribed speech can carry arbitrary Unicode ahead of the keyword
	flow.HandleTurn("ȺȺȺȺ MY NAME IS ALICE")
	assert.Equal(t, "Alice", flow.Slots().Name)

	flow.HandleTurn("İİİİ we're LOOKING TO automate support")
	assert.Equal(t, "automate support", flow.Slots().UseCase)
}

func TestEndOfConversationPhrases(t *testing.T) {
	assert.True(t, EndOfConversation("Okay thanks, BYE now"))
	assert.True(t, EndOfConversation("I think that's all"))
	assert.False(t, EndOfConversation("tell me about pricing"))
}
