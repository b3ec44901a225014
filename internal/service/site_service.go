package service

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/metrics"
	"github.com/mtlprog/clinicsite/internal/pages"
	"github.com/mtlprog/clinicsite/internal/render"
)

const notFoundKey = "not-found"

// SiteService serves rendered pages. Rendering is deterministic, so each
// document is rendered once and kept for the lifetime of the process.
type SiteService struct {
	renderer *render.Renderer
	cache    *cache.Cache
	metrics  *metrics.Metrics
}

// NewSiteService creates a new SiteService.
// It fails with domain.ErrMissingConfiguration if a required clinic
// setting is absent.
func NewSiteService(clinic domain.ClinicConfig, opts render.Options, m *metrics.Metrics) (*SiteService, error) {
	renderer, err := render.New(clinic, opts)
	if err != nil {
		return nil, err
	}

	return &SiteService{
		renderer: renderer,
		cache:    cache.New(cache.NoExpiration, 0),
		metrics:  m,
	}, nil
}

// Clinic returns the validated clinic configuration.
func (s *SiteService) Clinic() domain.ClinicConfig {
	return s.renderer.Clinic()
}

// Layout returns the layout the site is served in.
func (s *SiteService) Layout() domain.Layout {
	return s.renderer.Layout()
}

// Pages lists the pages served in the current layout.
func (s *SiteService) Pages() []pages.Page {
	return pages.List(s.renderer.Layout())
}

// Page returns the document of page id.
func (s *SiteService) Page(ctx context.Context, id domain.PageID) ([]byte, error) {
	return s.cached(ctx, string(id), func() ([]byte, error) {
		return s.renderer.Render(id)
	})
}

// NotFound returns the "page not found" document.
func (s *SiteService) NotFound(ctx context.Context) ([]byte, error) {
	return s.cached(ctx, notFoundKey, s.renderer.RenderNotFound)
}

// Warm renders every page of the layout ahead of the first request.
func (s *SiteService) Warm(ctx context.Context) error {
	for _, page := range s.Pages() {
		if _, err := s.Page(ctx, page.ID); err != nil {
			return err
		}
	}
	_, err := s.NotFound(ctx)
	return err
}

func (s *SiteService) cached(ctx context.Context, key string, renderFn func() ([]byte, error)) ([]byte, error) {
	if doc, ok := s.cache.Get(key); ok {
		if s.metrics != nil {
			s.metrics.CacheHits.WithLabelValues(key).Inc()
		}
		return doc.([]byte), nil
	}

	start := time.Now()
	doc, err := renderFn()
	duration := time.Since(start)

	if s.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		s.metrics.PageRenders.WithLabelValues(key, status).Inc()
		s.metrics.RenderLatency.WithLabelValues(key).Observe(duration.Seconds())
	}

	log := zerolog.Ctx(ctx)
	if err != nil {
		log.Error().Err(err).Str("page", key).Msg("page render failed")
		return nil, err
	}

	log.Debug().
		Str("page", key).
		Int("size", len(doc)).
		Dur("duration", duration).
		Msg("page rendered")

	s.cache.SetDefault(key, doc)
	return doc, nil
}
