package activity

import (
	"context"
	"testing"
)

func TestFixtureSearch(t *testing.T) {
	s := NewFixtureSearcher()
	ctx := context.Background()

	cases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty returns all", "", []string{"act-1", "act-2", "act-3"}},
		{"whitespace only returns all", "   ", []string{"act-1", "act-2", "act-3"}},
		{"brand match", "queuecx", []string{"act-1"}},
		{"case insensitive", "QUEUECX", []string{"act-1"}},
		{"mixed case", "QueueCX", []string{"act-1"}},
		{"description match", "profile picture", []string{"act-3"}},
		{"title match", "digest", []string{"act-2"}},
		{"shared term", "account", []string{"act-1", "act-2"}},
		{"no match", "kubernetes", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			// Nunca null, siempre slice
			if got == nil {
				t.Fatal("result slice is nil")
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Fatalf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}
