package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	appplayers "github.com/preston-bernstein/soccer-data-service/internal/app/players"
	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
	"github.com/preston-bernstein/soccer-data-service/internal/logging"
	"github.com/preston-bernstein/soccer-data-service/internal/metrics"
)

// Route parameter names shared with the router.
const (
	ParamName    = "name"
	ParamCountry = "country"
	ParamClub    = "club"
)

// Handler wires HTTP routes to the player query service.
type Handler struct {
	svc     *appplayers.Service
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appplayers.Service, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness along with the number of loaded players.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status":  "ready",
		"players": h.svc.Count(),
	}, h.logger)
}

// Players returns the whole dataset.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	start := h.now()
	items := h.svc.Players()
	h.observe(r, metrics.OpAll, start, len(items))
	writeJSON(w, nethttp.StatusOK, items, h.logger)
}

// PlayerByName returns a single player or 404.
func (h *Handler) PlayerByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	name, ok := pathParam(r, ParamName)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player name", h.logger)
		return
	}

	start := h.now()
	player, found := h.svc.PlayerByName(name)
	results := 0
	if found {
		results = 1
	}
	h.observe(r, metrics.OpByName, start, results)

	if !found {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// PlayersByCountry returns all players of a nationality, possibly none.
func (h *Handler) PlayersByCountry(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.filtered(w, r, ParamCountry, metrics.OpByCountry, "invalid country", h.svc.PlayersByCountry)
}

// PlayersByClub returns all players of a club, possibly none.
func (h *Handler) PlayersByClub(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.filtered(w, r, ParamClub, metrics.OpByClub, "invalid club", h.svc.PlayersByClub)
}

// Attributes lists the attribute names of the dataset.
func (h *Handler) Attributes(w nethttp.ResponseWriter, r *nethttp.Request) {
	start := h.now()
	attrs := h.svc.Attributes()
	h.observe(r, metrics.OpAttributes, start, len(attrs))
	writeJSON(w, nethttp.StatusOK, attrs, h.logger)
}

// Names lists every player name.
func (h *Handler) Names(w nethttp.ResponseWriter, r *nethttp.Request) {
	start := h.now()
	names := h.svc.Names()
	h.observe(r, metrics.OpNames, start, len(names))
	writeJSON(w, nethttp.StatusOK, names, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) filtered(w nethttp.ResponseWriter, r *nethttp.Request, param, op, invalidMsg string, query func(string) []players.Player) {
	value, ok := pathParam(r, param)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, invalidMsg, h.logger)
		return
	}

	start := h.now()
	items := query(value)
	h.observe(r, op, start, len(items))
	writeJSON(w, nethttp.StatusOK, items, h.logger)
}

func (h *Handler) observe(r *nethttp.Request, op string, start time.Time, results int) {
	elapsed := h.now().Sub(start)
	h.metrics.RecordQuery(op, elapsed, results)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Debug("player query", logging.FieldOperation, op, logging.FieldCount, results)
	}
}

// pathParam returns the percent-decoded route parameter. chi hands back the
// raw segment when the request path carried escapes Go could not normalise
// (such as %2F), so those are decoded here.
func pathParam(r *nethttp.Request, key string) (string, bool) {
	raw := chi.URLParam(r, key)
	value := raw
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			return "", false
		}
		value = decoded
	}
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}
