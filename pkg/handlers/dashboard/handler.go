package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ev-tools/charge-atlas/pkg/adapters"
	"github.com/ev-tools/charge-atlas/pkg/export"
	"github.com/ev-tools/charge-atlas/pkg/models/api"
	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/observability/metrics"
	"github.com/ev-tools/charge-atlas/pkg/services/analytics"
	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
	"github.com/ev-tools/charge-atlas/pkg/services/session"
)

// Handler serves the dashboard API. All computation routes through the
// per-session dataset and filter state; the handler itself holds nothing
// mutable beyond the default session id created at boot.
type Handler struct {
	sessions  *session.Manager
	defaultID string
}

func NewHandler(sessions *session.Manager, defaultID string) *Handler {
	return &Handler{sessions: sessions, defaultID: defaultID}
}

// CreateSession starts a new exploration session from an uploaded CSV body.
// The upload is parsed before the session is registered, so a rejected
// upload creates nothing.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ds := dataset.Empty()
	var stats ingest.Stats
	if r.ContentLength != 0 {
		sessions, loaded, err := ingest.Load(r.Body)
		if err != nil {
			logger.Error().Err(err).Msg("upload failed")
			writeError(w, http.StatusBadRequest, err)
			return
		}
		ds = dataset.New(sessions)
		stats = loaded
	}
	s := h.sessions.Create(ds, stats)
	writeJSON(w, logger, sessionInfo(s))
}

// GetDashboard evaluates the KPI and chart set for the session's filter
// state, optionally overridden by station/month query parameters for a
// single read.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	f, err := filterFromQuery(r, s.Dataset(), s.Filter())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	kpis, charts := evaluate(s, f)
	metrics.ObserveRecompute(time.Since(start))

	writeJSON(w, logger, api.Dashboard{
		Station: f.Station,
		Month:   f.Month,
		KPIs:    adapters.MapKPISetDomainToApi(kpis),
		Charts:  adapters.MapChartSetDomainToApi(charts),
	})
}

// ListFilters returns the selectable stations and months for the session's
// dataset.
func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	ds := s.Dataset()
	writeJSON(w, logger, api.FilterOptions{
		Stations: ds.Stations(),
		Months:   adapters.MapMonthOptionsDomainToApi(ds.Months()),
	})
}

// SetFilter updates the session's filter state.
func (h *Handler) SetFilter(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req struct {
		Station string `json:"station"`
		Month   int    `json:"month"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.SetFilter(domain.FilterState{Station: req.Station, Month: req.Month}); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info().Str("station", req.Station).Int("month", req.Month).Msg("filter updated")
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceDataset swaps in a new uploaded dataset. On parse failure the
// previous dataset is retained and the error reported.
func (h *Handler) ReplaceDataset(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	start := time.Now()
	stats, err := s.Replace(r.Body)
	if err != nil {
		metrics.ObserveLoad(metrics.ResultError, time.Since(start))
		logger.Error().Err(err).Msg("dataset replace failed, previous dataset retained")
		writeError(w, http.StatusBadRequest, err)
		return
	}
	metrics.ObserveLoad(metrics.ResultSuccess, time.Since(start))
	logger.Info().
		Int("rows", stats.Rows).
		Int("bad_timestamps", stats.BadTimestamps).
		Int("bad_durations", stats.BadDurations).
		Msg("dataset replaced")
	writeJSON(w, logger, sessionInfo(s))
}

// Export renders the current dashboard as an xlsx or pdf attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	format := chi.URLParam(r, "format")
	f := s.Filter()
	kpis, charts := evaluate(s, f)
	report := &domain.Report{
		Title:       "EV Charging Sessions",
		GeneratedAt: time.Now(),
		Filter:      f,
		KPIs:        kpis,
		Charts:      charts,
	}

	start := time.Now()
	var payload []byte
	var contentType string
	switch format {
	case "xlsx":
		payload, err = export.BuildXLSX(report)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		payload, err = export.BuildPDF(report)
		contentType = "application/pdf"
	default:
		writeError(w, http.StatusBadRequest, errors.New("unsupported export format: "+format))
		return
	}
	if err != nil {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		logger.Error().Err(err).Str("format", format).Msg("export failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.ObserveExport(format, metrics.ResultSuccess, time.Since(start))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=dashboard."+format)
	_, _ = w.Write(payload)
}

// Snapshot streams the session's serialized base dataset.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := s.Snapshot(w); err != nil {
		logger.Error().Err(err).Msg("snapshot encoding failed")
	}
}

// Restore replaces the session's dataset from an uploaded snapshot.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	s, err := h.session(r)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err := s.Restore(r.Body); err != nil {
		logger.Error().Err(err).Msg("snapshot restore failed, previous dataset retained")
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, logger, sessionInfo(s))
}

func (h *Handler) session(r *http.Request) (*session.Session, error) {
	id := chi.URLParam(r, "session")
	if id == "" {
		id = h.defaultID
	}
	return h.sessions.Get(id)
}

// evaluate runs a full recomputation pass. A query-parameter override is a
// one-off read; it never persists into the session's filter state.
func evaluate(s *session.Session, f domain.FilterState) (domain.KPISet, domain.ChartSet) {
	return analytics.Evaluate(s.Dataset(), f)
}

// filterFromQuery applies one-off query overrides on top of the session's
// filter state. Overrides face the same distinct-value validation as
// SetFilter; a typo is a client error, not an empty dashboard.
func filterFromQuery(r *http.Request, ds *dataset.Dataset, current domain.FilterState) (domain.FilterState, error) {
	f := current
	if st := r.URL.Query().Get("station"); st != "" {
		if !ds.HasStation(st) {
			return domain.FilterState{}, fmt.Errorf("station %q not present in dataset", st)
		}
		f.Station = st
	}
	if mo := r.URL.Query().Get("month"); mo != "" {
		n, err := strconv.Atoi(mo)
		if err != nil {
			return domain.FilterState{}, errors.New("month must be a number (0 for all)")
		}
		if !ds.HasMonth(n) {
			return domain.FilterState{}, fmt.Errorf("month %d not present in dataset", n)
		}
		f.Month = n
	}
	return f, nil
}

func sessionInfo(s *session.Session) api.SessionInfo {
	stats := s.Stats()
	return api.SessionInfo{
		ID:           s.ID,
		Records:      s.Dataset().Len(),
		BadTimestamp: stats.BadTimestamps,
		BadDuration:  stats.BadDurations,
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
