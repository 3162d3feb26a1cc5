// Package dialogue holds the slot-filling state machines behind the
// conversational agents. Each flow is scoped to one session: it is created at
// session start, filled across turns, and reset in place once its record has
// been persisted.
package dialogue

import "strings"

// endPhrases signal the user wants to wrap up. Matched by case-insensitive
// substring, so "okay thanks, bye now" counts.
var endPhrases = []string{
	"that's all",
	"i'm done",
	"thank you",
	"thanks",
	"goodbye",
	"bye",
	"talk later",
	"speak soon",
	"have a good day",
	"i'll be in touch",
	"i need to go",
	"that's everything",
}

// EndOfConversation reports whether the text contains an end-of-conversation
// phrase.
func EndOfConversation(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range endPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// extractEmail returns the first token that looks like an email address: it
// contains "@" and a "." after it. Crude on purpose, transcripts are noisy.
func extractEmail(text string) string {
	for _, token := range strings.Fields(text) {
		token = strings.Trim(token, ".,!?")
		at := strings.Index(token, "@")
		if at > 0 && strings.Contains(token[at:], ".") {
			return token
		}
	}
	return ""
}

// extractAfter returns the capitalized token following any of the given
// prefixes, e.g. extractAfter("my name is alice", "my name is ") -> "Alice".
func extractAfter(text string, prefixes ...string) string {
	lower := asciiLower(text)
	for _, prefix := range prefixes {
		idx := strings.Index(lower, prefix)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(text[idx+len(prefix):])
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		return capitalize(strings.Trim(fields[0], ".,!?"))
	}
	return ""
}

// asciiLower lowercases ASCII letters only, keeping every byte offset
// identical to the input so an index found here is valid in the original
// text. Full Unicode lowering can change byte widths and shift offsets.
func asciiLower(s string) string {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if b == nil {
				b = []byte(s)
			}
			b[i] = c + ('a' - 'A')
		}
	}
	if b == nil {
		return s
	}
	return string(b)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// containsAny reports whether text contains any of the given keywords.
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// firstMatch returns the first keyword contained in text, or "".
func firstMatch(text string, keywords ...string) string {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}
