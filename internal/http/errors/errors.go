// Package errors define los errores HTTP de la aplicación y su
// serialización JSON.
package errors

import (
	"encoding/json"
	"net/http"
)

// errorResponse controla exactamente qué campos ve el cliente. El campo
// "error" duplica el mensaje legible: las acciones retornan resultados
// tagueados {error} vs {message} y los clientes leen ese campo.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error"`
}

// WriteError escribe la respuesta HTTP para err. Maneja *AppError, faults
// tagueados y errores genéricos.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	msg := appErr.Message
	if appErr.Detail != "" {
		msg = appErr.Detail
	}
	resp := errorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Detail,
		Error:   msg,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(resp)
}
