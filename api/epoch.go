package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/tifye/simlab/assert"
	"github.com/tifye/simlab/prng"
	"github.com/tifye/simlab/sim"
)

const (
	sessionName = "simlab"
	epochKey    = "epoch"
)

type epochResponse struct {
	Epoch uint32 `json:"epoch"`
}

func getSession(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	// A cookie that no longer decodes yields a fresh session alongside the
	// error; carry on with that one.
	return sess, nil
}

func renewEpoch(c echo.Context, sess *sessions.Session) (uint32, error) {
	epoch, err := prng.NewEpoch()
	if err != nil {
		return 0, err
	}
	sess.Values[epochKey] = epoch
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return 0, fmt.Errorf("save session: %w", err)
	}
	return epoch, nil
}

func sessionEpoch(c echo.Context) (uint32, error) {
	sess, err := getSession(c)
	if err != nil {
		return 0, err
	}
	if epoch, ok := sess.Values[epochKey].(uint32); ok {
		return epoch, nil
	}
	return renewEpoch(c, sess)
}

// requestEpoch prefers an explicit epoch query parameter so a shared link
// reproduces the same batch, and falls back to the session's epoch.
func requestEpoch(c echo.Context) (uint32, error) {
	raw := c.QueryParam("epoch")
	if raw == "" {
		return sessionEpoch(c)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, sim.Invalid("epoch", "must be an unsigned 32-bit integer, got %q", raw)
	}
	return uint32(v), nil
}

func handleGetEpoch(logger *log.Logger) echo.HandlerFunc {
	assert.AssertNotNil(logger)
	return func(c echo.Context) error {
		epoch, err := sessionEpoch(c)
		if err != nil {
			logger.Error("session epoch", "err", err)
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, epochResponse{Epoch: epoch})
	}
}

// handlePostEpoch replaces the session epoch, re-simulating every exercise
// on the next request.
func handlePostEpoch(logger *log.Logger) echo.HandlerFunc {
	assert.AssertNotNil(logger)
	return func(c echo.Context) error {
		sess, err := getSession(c)
		if err != nil {
			logger.Error("session", "err", err)
			return c.NoContent(http.StatusInternalServerError)
		}
		epoch, err := renewEpoch(c, sess)
		if err != nil {
			logger.Error("renew epoch", "err", err)
			return c.NoContent(http.StatusInternalServerError)
		}
		logger.Debug("epoch renewed", "epoch", epoch)
		return c.JSON(http.StatusOK, epochResponse{Epoch: epoch})
	}
}
