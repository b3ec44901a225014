package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/metrics"
	"github.com/mtlprog/clinicsite/internal/render"
	"github.com/mtlprog/clinicsite/internal/service"
)

// SiteServiceTestSuite is the test suite for SiteService.
type SiteServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	metrics *metrics.Metrics
	site    *service.SiteService
}

// SetupTest runs before each test.
func (s *SiteServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.metrics = metrics.New(prometheus.NewRegistry(), "test")

	site, err := service.NewSiteService(domain.ClinicConfig{
		Name:             "Sunrise Family Health",
		PractitionerName: "Jane",
		BookingURL:       "https://book.example.com",
	}, render.Options{Layout: domain.LayoutMulti, Year: 2025}, s.metrics)
	s.Require().NoError(err)
	s.site = site
}

func TestSiteServiceSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}

func (s *SiteServiceTestSuite) TestPageIsRenderedOnce() {
	first, err := s.site.Page(s.ctx, domain.PageHome)
	s.Require().NoError(err)

	second, err := s.site.Page(s.ctx, domain.PageHome)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PageRenders.WithLabelValues("home", "ok")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheHits.WithLabelValues("home")))
}

func (s *SiteServiceTestSuite) TestCachedMatchesFreshRender() {
	cached, err := s.site.Page(s.ctx, domain.PageAbout)
	s.Require().NoError(err)

	r, err := render.New(s.site.Clinic(), render.Options{Layout: domain.LayoutMulti, Year: 2025})
	s.Require().NoError(err)
	fresh, err := r.Render(domain.PageAbout)
	s.Require().NoError(err)

	s.Equal(fresh, cached)
}

func (s *SiteServiceTestSuite) TestUnknownPage() {
	_, err := s.site.Page(s.ctx, "billing")
	s.True(errors.Is(err, domain.ErrUnknownPage))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PageRenders.WithLabelValues("billing", "error")))
}

func (s *SiteServiceTestSuite) TestWarmRendersEveryPage() {
	s.Require().NoError(s.site.Warm(s.ctx))

	for _, page := range s.site.Pages() {
		s.Equal(1.0, testutil.ToFloat64(s.metrics.PageRenders.WithLabelValues(string(page.ID), "ok")), "page %s", page.ID)
	}
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PageRenders.WithLabelValues("not-found", "ok")))
}

func (s *SiteServiceTestSuite) TestNotFound() {
	doc, err := s.site.NotFound(s.ctx)
	s.Require().NoError(err)
	s.Contains(string(doc), "Page Not Found")
}

func (s *SiteServiceTestSuite) TestMissingConfiguration() {
	site, err := service.NewSiteService(domain.ClinicConfig{Name: "Sunrise"}, render.Options{}, nil)
	s.Nil(site)
	s.True(errors.Is(err, domain.ErrMissingConfiguration))
}

func (s *SiteServiceTestSuite) TestWithoutMetrics() {
	site, err := service.NewSiteService(s.site.Clinic(), render.Options{Layout: domain.LayoutSingle}, nil)
	s.Require().NoError(err)

	s.Require().Len(site.Pages(), 1)
	doc, err := site.Page(s.ctx, domain.PageHome)
	s.Require().NoError(err)
	s.Contains(string(doc), `id="contact"`)
}
