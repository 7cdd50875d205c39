package board

import (
	"slices"
	"strings"

	"hualien-aid/internal/models"
)

// Filters is the set of categories the map is narrowed to. Empty means
// every category.
type Filters []models.Category

// ParseFilters reads a comma separated category list. Unknown names and
// repeats are dropped.
func ParseFilters(raw string) Filters {
	var f Filters
	for _, part := range strings.Split(raw, ",") {
		c := models.Category(strings.TrimSpace(part))
		if c.Valid() && !f.Has(c) {
			f = append(f, c)
		}
	}
	return f
}

func (f Filters) Empty() bool { return len(f) == 0 }

func (f Filters) Has(c models.Category) bool { return slices.Contains(f, c) }

// Matches reports whether a marker of category c passes the filter.
func (f Filters) Matches(c models.Category) bool { return f.Empty() || f.Has(c) }

// Toggle adds c if absent and removes it if present.
func (f Filters) Toggle(c models.Category) Filters {
	if i := slices.Index(f, c); i >= 0 {
		return slices.Delete(slices.Clone(f), i, i+1)
	}
	return append(slices.Clone(f), c)
}

func (f Filters) Clear() Filters { return nil }

func (f Filters) SelectAll() Filters { return Filters(models.Categories()) }

func (f Filters) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
