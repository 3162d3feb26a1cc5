package resolve

import (
	"strings"

	"voiceagents/internal/catalog"
	"voiceagents/internal/model"
)

// Resolver maps an ambiguous spoken reference ("the second one", "the blue
// mug") onto a concrete catalog item, given the items most recently shown to
// the user.
type Resolver struct {
	catalog *catalog.Store
}

// New creates a resolver over the given catalog.
func New(cat *catalog.Store) *Resolver {
	return &Resolver{catalog: cat}
}

// ordinal cues checked as independent substring tests, in this order. On input
// containing several cues the earliest-checked one wins, which can mis-read
// phrases like "not the first one, the second one". Known ambiguity, kept as
// shipped.
var ordinals = []struct {
	word  string
	digit string
	index int
}{
	{"first", "1", 0},
	{"second", "2", 1},
	{"third", "3", 2},
}

// Resolve maps reference text onto a catalog item. A literal catalog id wins
// over everything; then ordinal cues against the recently shown list; then a
// case-insensitive substring match on name or color. Not-found is a normal
// outcome the caller turns into a clarification prompt, never a fabricated
// product.
func (r *Resolver) Resolve(reference string, shown []model.CatalogItem) (model.CatalogItem, bool) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return model.CatalogItem{}, false
	}

	if item, ok := r.catalog.GetByID(reference); ok {
		return item, true
	}

	lower := strings.ToLower(reference)

	for _, ord := range ordinals {
		if strings.Contains(lower, ord.word) || strings.Contains(lower, ord.digit) {
			if ord.index < len(shown) {
				return shown[ord.index], true
			}
			return model.CatalogItem{}, false
		}
	}

	for _, item := range shown {
		if strings.Contains(strings.ToLower(item.Name), lower) ||
			strings.Contains(strings.ToLower(item.Color), lower) {
			return item, true
		}
	}

	return model.CatalogItem{}, false
}
