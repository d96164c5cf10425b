package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/tifye/simlab/assert"
	"github.com/tifye/simlab/congruential"
)

func handleGetGenerator(logger *log.Logger, m *metrics, kind congruential.Kind) echo.HandlerFunc {
	assert.AssertNotNil(logger)
	assert.AssertNotNil(m)
	return func(c echo.Context) error {
		format, err := responseFormat(c)
		if err != nil {
			return respondError(c, logger, m, err)
		}

		cfg := congruential.DefaultConfig(kind)
		binder := echo.QueryParamsBinder(c).
			TextUnmarshaler("seed", cfg.Seed).
			TextUnmarshaler("k", cfg.K).
			Int("power", &cfg.Power).
			Int("decimals", &cfg.Decimals).
			Int("count", &cfg.Count)
		if kind == congruential.Linear {
			binder = binder.TextUnmarshaler("c", cfg.C)
		}
		if err := binder.BindError(); err != nil {
			return respondError(c, logger, m, err)
		}

		start := time.Now()
		seq, err := congruential.Generate(cfg)
		if err != nil {
			return respondError(c, logger, m, err)
		}
		m.observeBatch(kind.String(), 1, time.Since(start))

		if format == formatCSV {
			return writeCSV(c, kind.String()+".csv", seq.Rows)
		}
		return c.JSON(http.StatusOK, seq)
	}
}
