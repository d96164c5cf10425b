package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/tifye/simlab/export"
	"github.com/tifye/simlab/sim"
)

type errorResponse struct {
	Error string `json:"error"`
	Param string `json:"param,omitempty"`
}

type batchResponse[Row any, Sum sim.Summary] struct {
	sim.Batch[Row, Sum]
	Aggregate sim.Aggregate `json:"aggregate"`
}

// batcher computes batches for handlers, memoizing them in cache.
type batcher struct {
	logger  *log.Logger
	cache   *cache.Cache
	metrics *metrics
}

func cacheKey(exercise string, params any, epoch uint32, runs int) string {
	return fmt.Sprintf("%s|%d|%d|%+v", exercise, epoch, runs, params)
}

func respondError(c echo.Context, logger *log.Logger, m *metrics, err error) error {
	var verr *sim.ValidationError
	if errors.As(err, &verr) {
		m.invalidArgs.WithLabelValues(verr.Param).Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: verr.Error(), Param: verr.Param})
	}

	var berr *echo.BindingError
	if errors.As(err, &berr) {
		m.invalidArgs.WithLabelValues(berr.Field).Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("%s: not a valid number %q", berr.Field, berr.Values),
			Param: berr.Field,
		})
	}

	logger.Error("simulate", "path", c.Path(), "err", err)
	return c.NoContent(http.StatusInternalServerError)
}

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// responseFormat reads the format query parameter, defaulting to JSON.
func responseFormat(c echo.Context) (string, error) {
	switch f := c.QueryParam("format"); f {
	case "", formatJSON:
		return formatJSON, nil
	case formatCSV:
		return formatCSV, nil
	default:
		return "", sim.Invalid("format", "must be json or csv, got %q", f)
	}
}

func (b *batcher) fail(c echo.Context, err error) error {
	return respondError(c, b.logger, b.metrics, err)
}

func serveBatch[Row export.Record, Sum sim.Summary](
	c echo.Context,
	b *batcher,
	key string,
	compute func() (sim.Batch[Row, Sum], error),
) error {
	format, err := responseFormat(c)
	if err != nil {
		return b.fail(c, err)
	}

	var batch sim.Batch[Row, Sum]
	if cached, ok := b.cache.Get(key); ok {
		batch, ok = cached.(sim.Batch[Row, Sum])
		if !ok {
			b.logger.Warn("unexpected cached value", "key", key)
			b.cache.Delete(key)
			return serveBatch(c, b, key, compute)
		}
		b.metrics.cacheHits.WithLabelValues(batch.Exercise).Inc()
	} else {
		start := time.Now()
		batch, err = compute()
		if err != nil {
			return b.fail(c, err)
		}
		b.metrics.observeBatch(batch.Exercise, len(batch.Runs), time.Since(start))
		b.cache.SetDefault(key, batch)
	}

	if format == formatCSV {
		run := 0
		if err := echo.QueryParamsBinder(c).Int("run", &run).BindError(); err != nil {
			return b.fail(c, err)
		}
		if run < 0 || run >= len(batch.Runs) {
			return b.fail(c, sim.Invalid("run", "must be between 0 and %d, got %d", len(batch.Runs)-1, run))
		}
		filename := batch.Exercise + "-" + strconv.FormatUint(uint64(batch.Epoch), 10) + "-run" + strconv.Itoa(run) + ".csv"
		return writeCSV(c, filename, batch.Runs[run].Rows)
	}

	agg, err := batch.Aggregate()
	if err != nil {
		return b.fail(c, fmt.Errorf("aggregate: %w", err))
	}
	return c.JSON(http.StatusOK, batchResponse[Row, Sum]{Batch: batch, Aggregate: agg})
}

func writeCSV[R export.Record](c echo.Context, filename string, rows []R) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)
	return export.WriteCSV(res, rows)
}
