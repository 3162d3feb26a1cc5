package catalog

import (
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"voiceagents/internal/logger"
	"voiceagents/internal/model"
)

// Filters is the set of optional predicates applied by List. Zero values mean
// "no constraint"; supplied predicates combine with AND.
type Filters struct {
	Category     string
	MaxPrice     int
	Color        string
	NameContains string
}

// Store holds the product catalog. Read-only after construction, so a single
// store may be shared across concurrent sessions.
type Store struct {
	items []model.CatalogItem
}

// NewStore creates a store over the given items, kept in the given order.
func NewStore(items []model.CatalogItem) *Store {
	return &Store{items: items}
}

// Load reads a catalog JSON file. A missing or unparseable file falls back to
// the built-in default catalog.
func Load(path string) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("catalog read failed, using defaults")
		}
		return Default()
	}

	var items []model.CatalogItem
	if err := sonic.Unmarshal(data, &items); err != nil || len(items) == 0 {
		logger.Warn().Str("path", path).Msg("catalog file unparseable or empty, using defaults")
		return Default()
	}

	return NewStore(items)
}

// List returns the items satisfying every supplied predicate, in catalog
// order. An empty Filters returns the full catalog.
func (s *Store) List(f Filters) []model.CatalogItem {
	filtered := s.items

	if f.Category != "" {
		filtered = keep(filtered, func(p model.CatalogItem) bool {
			return p.Category == f.Category
		})
	}
	if f.MaxPrice > 0 {
		filtered = keep(filtered, func(p model.CatalogItem) bool {
			return p.Price <= f.MaxPrice
		})
	}
	if f.Color != "" {
		filtered = keep(filtered, func(p model.CatalogItem) bool {
			return p.Color == f.Color
		})
	}
	if f.NameContains != "" {
		term := strings.ToLower(f.NameContains)
		filtered = keep(filtered, func(p model.CatalogItem) bool {
			return strings.Contains(strings.ToLower(p.Name), term)
		})
	}

	return filtered
}

// GetByID looks up an item by exact identifier. Not-found is a normal outcome.
func (s *Store) GetByID(id string) (model.CatalogItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.CatalogItem{}, false
}

// Len returns the number of items in the catalog.
func (s *Store) Len() int {
	return len(s.items)
}

func keep(items []model.CatalogItem, pred func(model.CatalogItem) bool) []model.CatalogItem {
	var out []model.CatalogItem
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}
