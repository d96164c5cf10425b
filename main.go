package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"github.com/tifye/simlab/api"
)

func main() {
	config := viper.New()
	config.AutomaticEnv()

	err := godotenv.Load()
	if err != nil {
		log.Warn("could not load .env file", "err", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	config.SetDefault("LOG_LEVEL", "info")
	level, err := log.ParseLevel(config.GetString("LOG_LEVEL"))
	if err != nil {
		log.Warn("unknown log level, using info", "level", config.GetString("LOG_LEVEL"))
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stdout, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	err = run(ctx, logger, config)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, config *viper.Viper) error {
	config.SetDefault("PORT", 6565)
	config.SetDefault("CACHE_TTL", 10*time.Minute)
	config.SetDefault("RATE_LIMIT", 20)
	port := config.GetInt("PORT")

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("net listen: %w", err)
	}

	deps := initDependencies(logger, config)
	s := api.NewServer(logger.WithPrefix("api"), deps)
	go func() {
		logger.Info("serving", "addr", ln.Addr())
		err := s.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = s.Shutdown(closeCtx)
	if err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func initDependencies(logger *log.Logger, config *viper.Viper) *api.ServerDependencies {
	secret := []byte(config.GetString("SESSION_SECRET"))
	if len(secret) == 0 {
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
		secret = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	ttl := config.GetDuration("CACHE_TTL")
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &api.ServerDependencies{
		SessionStore: store,
		Batches:      cache.New(ttl, 2*ttl),
		RateLimit:    config.GetFloat64("RATE_LIMIT"),
		Registry:     reg,
	}
}
