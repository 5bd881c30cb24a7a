package combobox

import (
	"strings"

	"formkit/internal/domain"
)

// Filter returns the options whose label contains query, ignoring case, in
// catalog order. An empty query yields the whole catalog.
func Filter(catalog []domain.Option, query string) []domain.Option {
	if query == "" {
		return catalog
	}

	needle := strings.ToLower(query)
	view := make([]domain.Option, 0, len(catalog))
	for _, opt := range catalog {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			view = append(view, opt)
		}
	}
	return view
}
