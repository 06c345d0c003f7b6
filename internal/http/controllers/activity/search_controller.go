// Package activity contiene el controller de búsqueda de actividad.
package activity

import (
	"encoding/json"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	svc "github.com/ngoiyaeric/dash/internal/http/services/activity"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// SearchController handles GET /v1/activity/search.
type SearchController struct {
	searcher svc.Searcher
}

// NewSearchController creates the activity search controller.
func NewSearchController(searcher svc.Searcher) *SearchController {
	return &SearchController{searcher: searcher}
}

// Search returns activity records matching the q parameter; all of them
// when q is empty.
func (c *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("SearchController.Search"))

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	activities, err := c.searcher.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Error("search failed", logger.Err(err))
		httperrors.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dto.ActivitySearchResponse{Activities: activities})
}
