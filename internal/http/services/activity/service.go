// Package activity implements activity search over a fixture candidate
// list. A real search collaborator can replace the Searcher port without
// touching the controller.
package activity

import (
	"context"
	"strings"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	"github.com/ngoiyaeric/dash/internal/metrics"
)

// Searcher busca registros de actividad para un query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]dto.Activity, error)
}

// candidates es la lista fija del modo fixture.
var candidates = []dto.Activity{
	{
		ID:          "act-1",
		Title:       "QueueCX onboarding",
		Description: "Walk through the QueueCX dashboard and connect your first account",
		Kind:        "guide",
	},
	{
		ID:          "act-2",
		Title:       "Weekly digest",
		Description: "Summary of profile views and account activity for the week",
		Kind:        "report",
	},
	{
		ID:          "act-3",
		Title:       "Avatar updated",
		Description: "Your profile picture was changed from the settings page",
		Kind:        "event",
	},
}

type fixtureSearcher struct{}

// NewFixtureSearcher retorna el Searcher de modo offline: lista fija,
// match por substring case-insensitive sobre título o descripción. No es
// un motor de búsqueda: sin ranking ni tokenización.
func NewFixtureSearcher() Searcher {
	return fixtureSearcher{}
}

func (fixtureSearcher) Search(ctx context.Context, query string) ([]dto.Activity, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]dto.Activity, 0, len(candidates))
	for _, a := range candidates {
		if query == "" ||
			strings.Contains(strings.ToLower(a.Title), query) ||
			strings.Contains(strings.ToLower(a.Description), query) {
			out = append(out, a)
		}
	}
	metrics.Action("activity_search", "ok")
	return out, nil
}
