// Package health contiene los endpoints de liveness/readiness.
package health

import (
	"encoding/json"
	"net/http"
)

// Controller maneja /healthz y /readyz.
type Controller struct {
	// Ready chequea las dependencias (pool de DB). Nil = siempre ready.
	Ready func(r *http.Request) error
}

func NewController(ready func(r *http.Request) error) *Controller {
	return &Controller{Ready: ready}
}

func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}

func (c *Controller) Readyz(w http.ResponseWriter, r *http.Request) {
	if c.Ready != nil {
		if err := c.Ready(r); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, err.Error())
			return
		}
	}
	writeStatus(w, http.StatusOK, "ok")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
