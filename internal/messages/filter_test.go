package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skaran/portfolio/internal/models"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testContacts() []models.Contact {
	return []models.Contact{
		{ID: "1", Name: "Alice Smith", Email: "alice@example.com", Message: "Loved the projects page", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "2", Name: "Bob Jones", Email: "bob@corp.io", Message: "Hiring inquiry", CreatedAt: now.Add(-3 * 24 * time.Hour)},
		{ID: "3", Name: "Carol", Email: "carol@example.com", Message: "Question about ALICE", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}
}

func ids(contacts []models.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.ID
	}
	return out
}

func TestApplySearch(t *testing.T) {
	contacts := testContacts()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"matches name case-insensitively", "alice", []string{"1", "3"}},
		{"matches email domain", "corp.io", []string{"2"}},
		{"matches message text", "hiring", []string{"2"}},
		{"no match yields empty list", "zzz-no-such-term", []string{}},
		{"blank query keeps everything", "   ", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(contacts, Filter{Query: tt.query, Order: NewestFirst}, now)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	contacts := testContacts()

	_ = Apply(contacts, Filter{Query: "nothing-matches", Order: OldestFirst}, now)

	require.Len(t, contacts, 3)
	assert.Equal(t, []string{"1", "2", "3"}, ids(contacts), "fetched list unchanged")
}

func TestApplyRecentFilter(t *testing.T) {
	got := Apply(testContacts(), Filter{RecentOnly: true, Order: NewestFirst}, now)
	assert.Equal(t, []string{"1", "2"}, ids(got), "ten-day-old message filtered out")
}

func TestApplySortOrder(t *testing.T) {
	contacts := testContacts()

	newest := Apply(contacts, Filter{Order: NewestFirst}, now)
	assert.Equal(t, []string{"1", "2", "3"}, ids(newest))

	oldest := Apply(contacts, Filter{Order: OldestFirst}, now)
	assert.Equal(t, []string{"3", "2", "1"}, ids(oldest))
}
