package httpx

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/funnelmetrics/funnel-go/internal/dataset"
	"github.com/funnelmetrics/funnel-go/internal/export"
	"github.com/funnelmetrics/funnel-go/internal/funnel"
	"github.com/funnelmetrics/funnel-go/internal/models"
	"github.com/funnelmetrics/funnel-go/internal/monitor"
	"github.com/funnelmetrics/funnel-go/internal/store"
)

type api struct {
	log       *slog.Logger
	loader    *dataset.Loader
	ser       *export.Serializer
	session   *store.Session
	mon       *monitor.Metrics
	maxUpload int64
}

type datasetInfo struct {
	Loaded   bool      `json:"loaded"`
	Session  string    `json:"session_id,omitempty"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
	Rows     int       `json:"rows"`
	AdGroups []string  `json:"ad_groups,omitempty"`
}

type summaryResponse struct {
	Totals  models.SummaryTotals `json:"totals"`
	Display map[string]string    `json:"display"`
}

func (a *api) uploadDataset(w http.ResponseWriter, r *http.Request) {
	body, err := a.uploadBody(w, r)
	if err != nil {
		a.mon.LoadFailures.WithLabelValues("request").Inc()
		status := http.StatusBadRequest
		if isTooLarge(err) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, r, status, err.Error())
		return
	}
	defer body.Close()

	ds, err := a.loader.Load(body)
	if err != nil {
		// The previous dataset, if any, stays untouched.
		status, reason := classifyLoadError(err)
		a.mon.LoadFailures.WithLabelValues(reason).Inc()
		a.log.Warn("load rejected", slog.String("reason", reason), slog.String("err", err.Error()))
		writeError(w, r, status, err.Error())
		return
	}

	a.session.Replace(ds)
	a.mon.Loads.Inc()
	a.mon.Records.Set(float64(len(ds.Records)))
	a.log.Info("dataset loaded",
		slog.String("session", ds.SessionID),
		slog.Int("rows", len(ds.Records)))

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, datasetInfo{
		Loaded:   true,
		Session:  ds.SessionID,
		LoadedAt: ds.LoadedAt,
		Rows:     len(ds.Records),
		AdGroups: ds.AdGroups(),
	})
}

// uploadBody accepts either a multipart form with a "file" field or a raw
// CSV request body, both capped at the configured upload limit.
func (a *api) uploadBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("file")
		if err != nil {
			if isTooLarge(err) {
				return nil, err
			}
			return nil, errors.New(`multipart upload requires a "file" field`)
		}
		return f, nil
	}
	return r.Body, nil
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func (a *api) datasetInfo(w http.ResponseWriter, r *http.Request) {
	ds := a.session.Dataset()
	if ds == nil {
		render.JSON(w, r, datasetInfo{Loaded: false})
		return
	}
	render.JSON(w, r, datasetInfo{
		Loaded:   true,
		Session:  ds.SessionID,
		LoadedAt: ds.LoadedAt,
		Rows:     len(ds.Records),
		AdGroups: ds.AdGroups(),
	})
}

func (a *api) resetDataset(w http.ResponseWriter, r *http.Request) {
	a.session.Reset()
	a.mon.Records.Set(0)
	w.WriteHeader(http.StatusNoContent)
}

func (a *api) listRecords(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.requireDataset(w, r)
	if !ok {
		return
	}
	rows := funnel.Filter(ds.Records, funnel.ParseFilter(r.URL.Query()))
	render.JSON(w, r, rows)
}

func (a *api) summary(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.requireDataset(w, r)
	if !ok {
		return
	}
	rows := funnel.Filter(ds.Records, funnel.ParseFilter(r.URL.Query()))
	totals := funnel.Aggregate(rows)
	render.JSON(w, r, summaryResponse{
		Totals: totals,
		Display: map[string]string{
			"cost":               funnel.FormatUSD(totals.Cost),
			"revenue":            funnel.FormatUSD(totals.Revenue),
			"cpi":                funnel.FormatUSD(totals.CPI),
			"trial_cost":         funnel.FormatUSD(totals.TrialCost),
			"cac":                funnel.FormatUSD(totals.CAC),
			"install_rate":       funnel.FormatPercent(totals.InstallRate),
			"install_to_trial":   funnel.FormatPercent(totals.InstallToTrialRate),
			"install_to_paid":    funnel.FormatPercent(totals.InstallToPaidRate),
			"trial_to_paid":      funnel.FormatPercent(totals.TrialToPaidRate),
			"overall_conversion": funnel.FormatPercent(totals.OverallConversion),
			"roi":                funnel.FormatPercent(totals.ROI),
		},
	})
}

func (a *api) funnelStages(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.requireDataset(w, r)
	if !ok {
		return
	}
	rows := funnel.Filter(ds.Records, funnel.ParseFilter(r.URL.Query()))
	render.JSON(w, r, funnel.Project(funnel.Aggregate(rows)))
}

func (a *api) adGroups(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.requireDataset(w, r)
	if !ok {
		return
	}
	groups := append([]string{models.AllAdGroups}, ds.AdGroups()...)
	render.JSON(w, r, groups)
}

func (a *api) exportReport(w http.ResponseWriter, r *http.Request) {
	ds, ok := a.requireDataset(w, r)
	if !ok {
		return
	}
	rows := funnel.Filter(ds.Records, funnel.ParseFilter(r.URL.Query()))
	csvText, err := a.ser.Report(ds.Headers, rows)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.mon.Exports.WithLabelValues("report").Inc()
	writeCSV(w, "campaign-report.csv", csvText)
}

func (a *api) exportTemplate(w http.ResponseWriter, r *http.Request) {
	csvText, err := a.ser.Template()
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	a.mon.Exports.WithLabelValues("template").Inc()
	writeCSV(w, "campaign-template.csv", csvText)
}

func (a *api) requireDataset(w http.ResponseWriter, r *http.Request) (*models.Dataset, bool) {
	ds := a.session.Dataset()
	if ds == nil {
		writeError(w, r, http.StatusNotFound, "no dataset loaded")
		return nil, false
	}
	return ds, true
}

func classifyLoadError(err error) (status int, reason string) {
	var se *dataset.SchemaError
	var re *dataset.RowProcessingError
	var pe *dataset.ParseError
	switch {
	case isTooLarge(err):
		// The limit breach surfaces as a read error inside the CSV
		// decode, wrapped in a ParseError; it is a request fault.
		return http.StatusRequestEntityTooLarge, "request"
	case errors.As(err, &se):
		return http.StatusUnprocessableEntity, "schema"
	case errors.As(err, &re):
		return http.StatusUnprocessableEntity, "row"
	case errors.As(err, &pe):
		return http.StatusBadRequest, "parse"
	default:
		return http.StatusBadRequest, "request"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
