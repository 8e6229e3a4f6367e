package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/funnelmetrics/funnel-go/internal/dataset"
	"github.com/funnelmetrics/funnel-go/internal/export"
	"github.com/funnelmetrics/funnel-go/internal/monitor"
	"github.com/funnelmetrics/funnel-go/internal/store"
	"github.com/funnelmetrics/funnel-go/internal/utils"
)

type Options struct {
	Log            *slog.Logger
	Loader         *dataset.Loader
	Serializer     *export.Serializer
	Session        *store.Session
	Metrics        *monitor.Metrics
	Gatherer       prometheus.Gatherer
	MaxUploadBytes int64
}

func NewRouter(o Options) http.Handler {
	a := &api{
		log:       o.Log,
		loader:    o.Loader,
		ser:       o.Serializer,
		session:   o.Session,
		mon:       o.Metrics,
		maxUpload: o.MaxUploadBytes,
	}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(o.Log))
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{}))

	mux.Post("/dataset", a.uploadDataset)
	mux.Get("/dataset", a.datasetInfo)
	mux.Delete("/dataset", a.resetDataset)

	mux.Get("/records", a.listRecords)
	mux.Get("/summary", a.summary)
	mux.Get("/funnel", a.funnelStages)
	mux.Get("/adgroups", a.adGroups)

	mux.Get("/export/report", a.exportReport)
	mux.Get("/export/template", a.exportTemplate)

	return mux
}
