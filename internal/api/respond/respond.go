package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func write(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, response{Success: true, Data: data})
}

// Created writes a 201 response with the given data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, response{Success: true, Data: data})
}

// Accepted writes a 202 response with the given data.
func Accepted(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusAccepted, response{Success: true, Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	write(w, code, response{Success: false, Error: err.Error()})
}
