package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/handler"
	"github.com/mtlprog/clinicsite/internal/metrics"
	"github.com/mtlprog/clinicsite/internal/middleware"
	"github.com/mtlprog/clinicsite/internal/render"
	"github.com/mtlprog/clinicsite/internal/service"
)

var testClinic = domain.ClinicConfig{
	Name:             "Sunrise Family Health",
	PractitionerName: "Jane",
	BookingURL:       "https://book.example.com",
}

func newRouter(layout domain.Layout, opts handler.Options) (http.Handler, error) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry, "clinicsite")

	site, err := service.NewSiteService(testClinic, render.Options{Layout: layout, Year: 2025}, m)
	if err != nil {
		return nil, err
	}

	return handler.New(site, m, registry, opts).Routes(), nil
}

type HandlerTestSuite struct {
	suite.Suite
	router http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	router, err := newRouter(domain.LayoutMulti, handler.Options{})
	s.Require().NoError(err)
	s.router = router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// Helper to make a request against the router
func (s *HandlerTestSuite) makeRequest(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestHomePage() {
	w := s.makeRequest(http.MethodGet, "/")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/html; charset=utf-8", w.Header().Get("Content-Type"))
	s.Contains(w.Body.String(), "Sunrise Family Health")
	s.Contains(w.Body.String(), `href="https://book.example.com"`)
}

func (s *HandlerTestSuite) TestEveryPageMarksItselfActive() {
	for _, path := range []string{"/", "/about", "/services", "/contact"} {
		w := s.makeRequest(http.MethodGet, path)

		s.Equal(http.StatusOK, w.Code, path)
		body := w.Body.String()
		s.Equal(1, strings.Count(body, `aria-current="page"`), path)
		s.Contains(body, `<a href="`+path+`" class="nav-link nav-link-active" aria-current="page">`, path)
	}
}

func (s *HandlerTestSuite) TestTrailingSlash() {
	w := s.makeRequest(http.MethodGet, "/about/")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "About Jane")
}

func (s *HandlerTestSuite) TestHead() {
	w := s.makeRequest(http.MethodHead, "/services")
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestNotFound() {
	w := s.makeRequest(http.MethodGet, "/billing")

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Page Not Found")
	s.NotContains(w.Body.String(), `aria-current="page"`)
}

func (s *HandlerTestSuite) TestHealthz() {
	w := s.makeRequest(http.MethodGet, "/healthz")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", w.Body.String())
}

func (s *HandlerTestSuite) TestMetrics() {
	s.makeRequest(http.MethodGet, "/")

	w := s.makeRequest(http.MethodGet, "/metrics")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "clinicsite_http_page_requests_total")
	s.Contains(w.Body.String(), "clinicsite_page_renders_total")
}

func (s *HandlerTestSuite) TestStylesheet() {
	w := s.makeRequest(http.MethodGet, "/static/site.css")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/css")
	s.Contains(w.Body.String(), "--teal")
}

func (s *HandlerTestSuite) TestSecurityHeaders() {
	w := s.makeRequest(http.MethodGet, "/")

	s.Equal("DENY", w.Header().Get("X-Frame-Options"))
	s.Equal("nosniff", w.Header().Get("X-Content-Type-Options"))
	s.Contains(w.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func (s *HandlerTestSuite) TestTraceID() {
	w := s.makeRequest(http.MethodGet, "/")
	s.NotEmpty(w.Header().Get(middleware.TraceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.TraceIDHeader, "trace-123")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal("trace-123", w.Header().Get(middleware.TraceIDHeader))
}

func TestSingleLayoutRedirects(t *testing.T) {
	router, err := newRouter(domain.LayoutSingle, handler.Options{})
	if err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]string{
		"/about":    "/#about",
		"/services": "/#services",
		"/contact":  "/#contact",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusMovedPermanently {
			t.Errorf("%s: got status %d, want %d", path, w.Code, http.StatusMovedPermanently)
		}
		if got := w.Header().Get("Location"); got != want {
			t.Errorf("%s: got location %q, want %q", path, got, want)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(w.Body.String(), `href="#services"`) {
		t.Error("single layout home page should link to #services")
	}
}

func TestSingleLayoutNotFoundNavigation(t *testing.T) {
	router, err := newRouter(domain.LayoutSingle, handler.Options{})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/foo", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
	body := w.Body.String()
	if !strings.Contains(body, `href="/#about"`) {
		t.Error("not found page should link to /#about")
	}
	if strings.Contains(body, `href="#about"`) {
		t.Error("not found page should not link to a bare #about anchor")
	}
}

func TestRateLimit(t *testing.T) {
	router, err := newRouter(domain.LayoutMulti, handler.Options{RateLimit: 1})
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request: got status %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: got status %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}

func TestMissingConfigurationStopsConstruction(t *testing.T) {
	_, err := service.NewSiteService(domain.ClinicConfig{}, render.Options{}, nil)
	if err == nil {
		t.Fatal("expected missing configuration error")
	}
}
