package tutor

import (
	"os"

	"github.com/bytedance/sonic"

	"voiceagents/internal/logger"
)

// Concept is one teachable unit from the course content file.
type Concept struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Content is the loaded course material. Missing or corrupt files load with no
// concepts.
type Content struct {
	Concepts []Concept `json:"concepts"`
}

// Load reads the course content JSON file.
func Load(path string) *Content {
	var content Content

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("course content read failed")
		}
		return &content
	}
	if err := sonic.Unmarshal(data, &content); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("course content unparseable")
		return &Content{}
	}

	return &content
}

// Select returns the concept with the given id, or the first concept when the
// id is empty or unknown. Not-found only happens on an empty content set.
func (c *Content) Select(conceptID string) (Concept, bool) {
	if len(c.Concepts) == 0 {
		return Concept{}, false
	}

	if conceptID != "" {
		for _, concept := range c.Concepts {
			if concept.ID == conceptID {
				return concept, true
			}
		}
	}

	return c.Concepts[0], true
}

// AvailableConcepts returns the ids of every loaded concept.
func (c *Content) AvailableConcepts() []string {
	ids := make([]string, 0, len(c.Concepts))
	for _, concept := range c.Concepts {
		ids = append(ids, concept.ID)
	}
	return ids
}
