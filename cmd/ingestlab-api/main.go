// @title         Ingestlab API
// @version       0.1.0
// @description   Ingestion pipeline configuration sessions and a mock document analyzer

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"ingestlab/internal/adapters/notify/kafka"
	"ingestlab/internal/core/version"
	"ingestlab/internal/modkit/httpkit"
	"ingestlab/internal/platform/config"
	"ingestlab/internal/platform/logger"
	phttp "ingestlab/internal/platform/net/http"
	"ingestlab/internal/platform/store"

	"ingestlab/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	kfCfg := root.Prefix("SERVICE_KAFKA_")      // kfCfg lives under SERVICE_KAFKA_*

	// bring up logging early
	l := logger.Get()

	// both stores are optional; sessions and analysis degrade to in-memory
	sc := store.Config{AppName: version.ServiceName}
	if pgCfg.MayBool("ENABLED", false) {
		sc.PG = store.PGConfig{
			Enabled:   true,
			URL:       pgCfg.MustString("DBURL"),
			MaxConns:  int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQuery: pgCfg.MayDuration("SLOW_QUERY", 500*time.Millisecond),
			LogSQL:    pgCfg.MayBool("LOG_SQL", false),
		}
	}
	if chCfg.MayBool("ENABLED", false) {
		sc.CH = store.CHConfig{
			Enabled:       true,
			URL:           chCfg.MustString("DBURL"),
			ClientName:    version.ServiceName,
			ClientVersion: version.Info().Version,
			Component:     "sessions",
		}
	}

	st, err := store.Open(ctx, sc, store.WithLogger(*logger.Get()))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	keys, err := api.ParseAPIKeys(apiCfg.MayCSV("KEYS", nil))
	if err != nil {
		l.Panic().Err(err).Msg("invalid CORE_API_KEYS")
	}

	opts := api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		APIKeys:        keys,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Stack: httpkit.StackOptions{
			CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
			Backlog:     apiCfg.MayInt("BACKLOG", 64),
			Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
			Slow:        apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		},
	}

	// settled configs go to kafka when a broker list is configured
	if kfCfg.MayBool("ENABLED", false) {
		pub, err := kafka.NewPublisher(kafka.Config{
			Brokers:  kfCfg.MayCSV("BROKERS", []string{"localhost:9092"}),
			Topic:    kfCfg.MayString("TOPIC", "ingestlab.config"),
			ClientID: kfCfg.MayString("CLIENT_ID", "ingestlab-api"),
			Retries:  kfCfg.MayInt("RETRIES", 3),
			Timeout:  kfCfg.MayDuration("TIMEOUT", 5*time.Second),

			Acks:        kfCfg.MayEnum("ACKS", "all", "none", "leader", "all"),
			Compression: kfCfg.MayEnum("COMPRESSION", "none", "none", "gzip", "snappy", "lz4", "zstd"),
		}, logger.Named("kafka"))
		if err != nil {
			l.Panic().Err(err).Msg("kafka publisher failed")
		}
		defer func() {
			if err := pub.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close kafka publisher")
			}
		}()
		opts.Publisher = pub
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	closeSessions := api.Mount(srv.Router(), opts)
	defer closeSessions()

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Error().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), apiCfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown failed")
		}
		<-errc
	}
}
