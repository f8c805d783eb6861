// @title         Bank OCR API
// @version       0.1.0
// @description   Reads seven-segment account number scans, validates their checksum and repairs single-stroke damage.
// @BasePath      /api/v1

// Command bankocr-api serves the OCR classifier over HTTP
//
// Postgres and ClickHouse are optional: each is opened only when its DBURL is set
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankocr/internal/modkit"
	"bankocr/internal/modkit/repokit"
	"bankocr/internal/platform/config"
	"bankocr/internal/platform/logger"
	phttp "bankocr/internal/platform/net/http"
	"bankocr/internal/platform/store"

	"bankocr/internal/services/api"
	resultsmod "bankocr/internal/services/results/module"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromEnv(root, "bankocr", "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if err := resultsmod.New(modkit.FromStore(root, st)).EnsureSchema(ctx); err != nil {
		l.Panic().Err(err).Msg("results schema")
	}

	srv := phttp.NewServer(root)
	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			l.Error().Err(err).Msg("http shutdown")
		}
	}()

	l.Info().Str("addr", srv.Addr()).Bool("pg", st.PG != nil).Bool("ch", st.CH != nil).Msg("bankocr-api listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
