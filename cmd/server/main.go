package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/funnelmetrics/funnel-go/internal/config"
	"github.com/funnelmetrics/funnel-go/internal/csvio"
	"github.com/funnelmetrics/funnel-go/internal/dataset"
	"github.com/funnelmetrics/funnel-go/internal/export"
	"github.com/funnelmetrics/funnel-go/internal/httpx"
	"github.com/funnelmetrics/funnel-go/internal/monitor"
	"github.com/funnelmetrics/funnel-go/internal/store"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	codec := csvio.NewCodec()

	r := httpx.NewRouter(httpx.Options{
		Log:            logger,
		Loader:         dataset.NewLoader(codec),
		Serializer:     export.NewSerializer(codec),
		Session:        store.NewSession(),
		Metrics:        monitor.New(reg),
		Gatherer:       reg,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
