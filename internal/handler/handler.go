package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/metrics"
	"github.com/mtlprog/clinicsite/internal/middleware"
	"github.com/mtlprog/clinicsite/internal/pages"
	"github.com/mtlprog/clinicsite/internal/service"
	"github.com/mtlprog/clinicsite/internal/static"
)

const pageCacheControl = "public, max-age=300"

// Options configure the HTTP surface.
type Options struct {
	// RateLimit is the number of requests per minute allowed per client IP.
	// Zero disables rate limiting.
	RateLimit int
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	site     *service.SiteService
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	opts     Options
}

// New creates a new Handler instance with all dependencies.
func New(site *service.SiteService, m *metrics.Metrics, gatherer prometheus.Gatherer, opts Options) *Handler {
	return &Handler{
		site:     site,
		metrics:  m,
		gatherer: gatherer,
		opts:     opts,
	}
}

// Routes builds the router with all middleware and routes registered.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityConfig()))
	if h.opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(h.opts.RateLimit, time.Minute))
	}
	r.Use(chimiddleware.StripSlashes)
	r.Use(chimiddleware.GetHead)

	h.RegisterRoutes(r)

	return r
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Health check
	r.Get("/healthz", h.handleHealthz)

	// Metrics
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	// Stylesheet and other static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.AssetFS()))))

	// Pages
	for _, page := range h.site.Pages() {
		r.Get(page.Path, h.handlePage(page.ID))
	}

	// The single layout keeps the multi-page paths working as anchors.
	if h.site.Layout() == domain.LayoutSingle {
		for _, page := range pages.List(domain.LayoutMulti) {
			if page.ID == domain.PageHome {
				continue
			}
			r.Get(page.Path, redirectTo(pages.SectionHref(domain.LayoutSingle, page.ID)))
		}
	}

	r.NotFound(h.handleNotFound)
}

// handleHealthz returns 200 OK once the site has been configured.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handlePage serves the rendered document of page id.
func (h *Handler) handlePage(id domain.PageID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.site.Page(r.Context(), id)
		if err != nil {
			status := respondError(w, r, err)
			h.countRequest(string(id), status)
			return
		}

		writeHTML(w, http.StatusOK, doc)
		h.countRequest(string(id), http.StatusOK)
	}
}

// handleNotFound serves the "page not found" document with a 404 status.
func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	doc, err := h.site.NotFound(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("not found page render failed")
		http.NotFound(w, r)
		h.countRequest("not-found", http.StatusNotFound)
		return
	}

	writeHTML(w, http.StatusNotFound, doc)
	h.countRequest("not-found", http.StatusNotFound)
}

func (h *Handler) countRequest(page string, status int) {
	if h.metrics == nil {
		return
	}
	h.metrics.PageRequests.WithLabelValues(page, strconv.Itoa(status)).Inc()
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}
}

// writeHTML writes an HTML document with the given status code.
func writeHTML(w http.ResponseWriter, status int, doc []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", pageCacheControl)
	w.WriteHeader(status)
	w.Write(doc)
}
