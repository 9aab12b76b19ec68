package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// Timeouts cover slow clients, not slow handlers: dispatch operations run
// against external providers and may legitimately take several seconds.
const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds the HTTP server for the dispatch API.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
