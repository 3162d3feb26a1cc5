package faq

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"voiceagents/internal/logger"
)

const handoffReply = "That's a great question! Let me connect you with our technical team who can provide detailed information about that."

// QA is one question/answer pair from the company FAQ file.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Store holds the company FAQ content. Missing or corrupt files load as an
// empty store; every lookup then falls back to the hand-off reply.
type Store struct {
	Company         string `json:"company"`
	About           string `json:"about"`
	ProductOverview string `json:"product_overview"`
	Pricing         string `json:"pricing"`
	FAQs            []QA   `json:"faqs"`
}

// Load reads the FAQ JSON file.
func Load(path string) *Store {
	var store Store

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("FAQ read failed, answering without it")
		}
		return &store
	}
	if err := sonic.Unmarshal(data, &store); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("FAQ file unparseable, answering without it")
		return &Store{}
	}

	return &store
}

// Answer finds the best canned answer for a question. FAQ entries are matched
// by word overlap with the stored question, then the about/product/pricing
// sections by keyword; anything else gets the hand-off reply.
func (s *Store) Answer(question string) string {
	lower := strings.ToLower(question)

	for _, item := range s.FAQs {
		for _, word := range strings.Fields(strings.ToLower(item.Question)) {
			if strings.Contains(lower, word) {
				return item.Answer
			}
		}
	}

	switch {
	case strings.Contains(lower, "about") || strings.Contains(lower, "company"):
		if s.About != "" {
			return s.About
		}
	case strings.Contains(lower, "product") || strings.Contains(lower, "features"):
		if s.ProductOverview != "" {
			return s.ProductOverview
		}
	case strings.Contains(lower, "pricing") || strings.Contains(lower, "cost"):
		if s.Pricing != "" {
			return s.Pricing
		}
	}

	return handoffReply
}
