// Package messages implements the admin panel's client-side transforms over
// the fetched contact list: search, recency filtering, sorting, and CSV
// export. All transforms are pure; the fetched list is never mutated.
package messages

import (
	"sort"
	"strings"
	"time"

	"github.com/skaran/portfolio/internal/models"
)

// recentWindow is the "recent" filter's lookback.
const recentWindow = 7 * 24 * time.Hour

type SortOrder string

const (
	NewestFirst SortOrder = "newest"
	OldestFirst SortOrder = "oldest"
)

// Filter selects and orders messages for display.
type Filter struct {
	// Query matches case-insensitively against name, email, and message.
	Query string
	// RecentOnly keeps messages created within the last 7 days of now.
	RecentOnly bool
	Order      SortOrder
}

// Apply returns a new slice of the messages matching the filter, sorted by
// creation time. now anchors the recency window (the client clock).
func Apply(contacts []models.Contact, f Filter, now time.Time) []models.Contact {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	cutoff := now.Add(-recentWindow)

	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if query != "" && !matches(c, query) {
			continue
		}
		if f.RecentOnly && !c.CreatedAt.After(cutoff) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if f.Order == OldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matches(c models.Contact, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Email), query) ||
		strings.Contains(strings.ToLower(c.Message), query)
}
