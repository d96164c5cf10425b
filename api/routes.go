package api

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tifye/simlab/congruential"
	"golang.org/x/time/rate"
)

func registerRoutes(e *echo.Echo, logger *log.Logger, deps *ServerDependencies) {
	m := newMetrics(deps.Registry)

	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "simlab",
		Registerer: deps.Registry,
	}))
	e.Use(session.Middleware(deps.SessionStore))
	if deps.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(deps.RateLimit))
		e.Use(middleware.RateLimiter(store))
	}

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Registry,
	}))

	e.GET("/epoch", handleGetEpoch(logger))
	e.POST("/epoch", handlePostEpoch(logger))

	b := &batcher{logger: logger, cache: deps.Batches, metrics: m}
	ex := e.Group("/exercises")
	ex.GET("/dice", handleGetDice(b))
	ex.GET("/farm", handleGetFarm(b))
	ex.GET("/inventory", handleGetInventory(b))
	ex.GET("/shop", handleGetShop(b))
	ex.GET("/deposit/fixed", handleGetFixedDeposit(b))
	ex.GET("/deposit/variable", handleGetVariableDeposit(b))

	gen := e.Group("/generators")
	gen.GET("/lcg", handleGetGenerator(logger, m, congruential.Linear))
	gen.GET("/mcg", handleGetGenerator(logger, m, congruential.Multiplicative))
}
