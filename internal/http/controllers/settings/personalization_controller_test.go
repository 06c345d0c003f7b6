package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngoiyaeric/dash/internal/authn"
	"github.com/ngoiyaeric/dash/internal/http/dto"
	mw "github.com/ngoiyaeric/dash/internal/http/middlewares"
	svc "github.com/ngoiyaeric/dash/internal/http/services/settings"
	storemem "github.com/ngoiyaeric/dash/internal/store/memory"
	"github.com/ngoiyaeric/dash/internal/viewcache"
)

func newController(t *testing.T) (*PersonalizationController, *storemem.Store) {
	t.Helper()
	rows := storemem.New()
	service := svc.NewService(svc.Deps{
		Settings: rows.Settings(),
		Views:    viewcache.NewMemory(time.Minute),
	})
	return NewPersonalizationController(service), rows
}

func authed(r *http.Request) *http.Request {
	sess := &authn.Session{Token: "t", UserID: "user-1", Email: "user@queuecx.com"}
	return r.WithContext(mw.WithSession(r.Context(), sess))
}

func TestUpdatePersonalization(t *testing.T) {
	c, rows := newController(t)

	body := bytes.NewBufferString(`{"system_prompt":"Be terse","notes":"Prefers dark mode"}`)
	req := authed(httptest.NewRequest(http.MethodPut, "/v1/settings/personalization", body))
	rec := httptest.NewRecorder()
	c.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Settings saved successfully", resp.Message)

	p, err := rows.Settings().GetPersonalization(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Be terse", p.SystemPrompt)
	assert.Equal(t, "Prefers dark mode", p.Notes)
}

func TestUpdatePersonalization_Validation(t *testing.T) {
	c, _ := newController(t)

	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{
			"prompt too long",
			`{"system_prompt":"` + strings.Repeat("a", 1001) + `","notes":""}`,
			"System prompt must be 1000 characters or less",
		},
		{
			"notes too long",
			`{"system_prompt":"","notes":"` + strings.Repeat("b", 2001) + `"}`,
			"Notes must be 2000 characters or less",
		},
		{
			// Ambos exceden: gana el mensaje del prompt
			"both too long",
			`{"system_prompt":"` + strings.Repeat("a", 1001) + `","notes":"` + strings.Repeat("b", 2001) + `"}`,
			"System prompt must be 1000 characters or less",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := authed(httptest.NewRequest(http.MethodPut, "/v1/settings/personalization", bytes.NewBufferString(tc.payload)))
			rec := httptest.NewRecorder()
			c.Update(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantErr, resp["error"])
		})
	}
}

func TestUpdatePersonalization_MethodNotAllowed(t *testing.T) {
	c, _ := newController(t)

	req := authed(httptest.NewRequest(http.MethodPost, "/v1/settings/personalization", bytes.NewBufferString("{}")))
	rec := httptest.NewRecorder()
	c.Update(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "PUT", rec.Header().Get("Allow"))
}

func TestUpdatePersonalization_BadJSON(t *testing.T) {
	c, _ := newController(t)

	req := authed(httptest.NewRequest(http.MethodPut, "/v1/settings/personalization", bytes.NewBufferString("{")))
	rec := httptest.NewRecorder()
	c.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
