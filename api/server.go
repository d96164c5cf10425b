package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tifye/simlab/assert"
)

type ServerDependencies struct {
	SessionStore sessions.Store
	// Batches memoizes simulation results keyed by exercise, parameters
	// and epoch.
	Batches *cache.Cache
	// RateLimit is the allowed requests per second per client. Zero
	// disables limiting.
	RateLimit float64
	Registry  *prometheus.Registry
}

func NewServer(logger *log.Logger, deps *ServerDependencies) *http.Server {
	assert.AssertNotNil(logger)
	assert.AssertNotNil(deps)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	server := &http.Server{
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       25 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		ErrorLog:          logger.StandardLog(),
		MaxHeaderBytes:    1 << 12,
	}

	registerRoutes(e, logger, deps)

	return server
}
