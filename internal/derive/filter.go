// Package derive holds the stateless view rules layered over store data:
// filters, partitions, simulated telemetry and threshold ladders.
package derive

import (
	"time"

	"github.com/litescript/spacescope/internal/space"
)

// CategoryFilter selects natural events by category. CategoryAll matches
// everything.
type CategoryFilter string

// CategoryAll disables category filtering.
const CategoryAll CategoryFilter = "all"

// FilterFor wraps a single category.
func FilterFor(c space.EventCategory) CategoryFilter {
	return CategoryFilter(c)
}

// CategoryFilters lists "all" followed by every category, in cycle order.
func CategoryFilters() []CategoryFilter {
	out := make([]CategoryFilter, 0, len(space.Categories)+1)
	out = append(out, CategoryAll)
	for _, c := range space.Categories {
		out = append(out, FilterFor(c))
	}
	return out
}

// NextFilter returns the filter after f in CategoryFilters order, wrapping.
func NextFilter(f CategoryFilter) CategoryFilter {
	filters := CategoryFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return CategoryAll
}

// FilterByCategory returns the events whose category equals the filter, in
// their original order. CategoryAll returns every event. The input slice is
// never modified.
func FilterByCategory(events []space.NaturalEvent, filter CategoryFilter) []space.NaturalEvent {
	if filter == CategoryAll {
		out := make([]space.NaturalEvent, len(events))
		copy(out, events)
		return out
	}

	out := make([]space.NaturalEvent, 0, len(events))
	for _, e := range events {
		if CategoryFilter(e.Category) == filter {
			out = append(out, e)
		}
	}
	return out
}

// IsUpcoming reports whether a launch is strictly after now. A launch whose
// NET equals now counts as past.
func IsUpcoming(l space.Launch, now time.Time) bool {
	return l.NET.After(now)
}

// PartitionLaunches splits launches into upcoming and past, preserving order.
func PartitionLaunches(launches []space.Launch, now time.Time) (upcoming, past []space.Launch) {
	for _, l := range launches {
		if IsUpcoming(l, now) {
			upcoming = append(upcoming, l)
		} else {
			past = append(past, l)
		}
	}
	return upcoming, past
}

// VisibleLayers returns the IDs of visible layers in collection order.
func VisibleLayers(layers []space.MapLayer) []string {
	var ids []string
	for _, l := range layers {
		if l.Visible {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
