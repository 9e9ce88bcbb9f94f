// Package httpjson concentra los helpers de respuesta JSON de los handlers.
// Empezó duplicado por módulo; al repetirse en cinco módulos se extrajo acá.
package httpjson

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorBody es el cuerpo estándar de error de la API.
type ErrorBody struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorBody{
		Message:   msg,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}
