package profile

import (
	"encoding/json"
	"net/http"

	"github.com/ngoiyaeric/dash/internal/fault"
	"github.com/ngoiyaeric/dash/internal/http/dto"
	httperrors "github.com/ngoiyaeric/dash/internal/http/errors"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/profile"
	"github.com/ngoiyaeric/dash/internal/observability/logger"
)

// AccountsController handles GET /v1/profile/accounts.
type AccountsController struct {
	service svc.Service
}

// NewAccountsController creates the connected-accounts controller.
func NewAccountsController(service svc.Service) *AccountsController {
	return &AccountsController{service: service}
}

// List returns the caller's connected accounts ordered by creation time.
// The accounts list is always present in the body, empty alongside the
// error on failure.
func (c *AccountsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AccountsController.List"))

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
		return
	}

	resp := dto.ConnectedAccountsResponse{Accounts: []dto.ConnectedAccount{}}

	accounts, err := c.service.ListConnectedAccounts(ctx, mw.GetUserID(ctx))
	if err != nil {
		status := http.StatusBadGateway
		if fault.IsAuth(err) {
			status = http.StatusUnauthorized
		}
		if fe := fault.As(err); fe != nil {
			resp.Error = fe.Message
		} else {
			resp.Error = "Failed to list connected accounts"
			log.Error("unexpected error", logger.Err(err))
		}
		writeAccounts(w, status, resp)
		return
	}

	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, dto.ConnectedAccount{
			ID:        a.ID,
			Provider:  a.Provider,
			Email:     a.Email,
			CreatedAt: a.CreatedAt,
		})
	}
	writeAccounts(w, http.StatusOK, resp)
}

func writeAccounts(w http.ResponseWriter, status int, resp dto.ConnectedAccountsResponse) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
