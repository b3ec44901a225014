// Package render turns a page descriptor and the clinic configuration into
// a complete HTML document.
//
// Rendering is a pure function of its inputs: the same configuration,
// options and page always produce byte-identical output.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/mtlprog/clinicsite/internal/config"
	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/pages"
	"github.com/mtlprog/clinicsite/internal/static"
)

// Options control rendering aspects that are not clinic settings.
type Options struct {
	Layout domain.Layout
	// Year is printed in the copyright line. It is fixed at construction
	// so that repeated renders stay identical.
	Year int
}

// Renderer renders the pages of one clinic.
type Renderer struct {
	clinic domain.ClinicConfig
	opts   Options
	tmpl   *template.Template
}

// notFoundPage is rendered for paths that match no page.
var notFoundPage = pages.Page{
	Title:    "Page Not Found",
	Tagline:  "The page you are looking for does not exist.",
	Sections: []pages.Section{"section-not-found"},
}

// New validates clinic and parses the embedded templates.
// A missing required setting fails with domain.ErrMissingConfiguration
// before any template is touched.
func New(clinic domain.ClinicConfig, opts Options) (*Renderer, error) {
	clinic, err := config.Validate(clinic)
	if err != nil {
		return nil, err
	}

	if opts.Layout == "" {
		opts.Layout = domain.LayoutMulti
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	if _, err := domain.ParseLayout(string(opts.Layout)); err != nil {
		return nil, err
	}

	tmpl, err := template.New("site").
		Funcs(template.FuncMap{"icon": iconSVG}).
		ParseFS(static.Templates, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		clinic: clinic,
		opts:   opts,
		tmpl:   tmpl,
	}, nil
}

// Clinic returns the validated configuration the renderer was built with.
func (r *Renderer) Clinic() domain.ClinicConfig {
	return r.clinic
}

// Layout returns the layout pages are rendered in.
func (r *Renderer) Layout() domain.Layout {
	return r.opts.Layout
}

// Render produces the document of page id.
func (r *Renderer) Render(id domain.PageID) ([]byte, error) {
	page, err := pages.Get(r.opts.Layout, id)
	if err != nil {
		return nil, err
	}

	return r.renderPage(page)
}

// RenderNotFound produces the "page not found" document. No navigation
// entry is active on it.
func (r *Renderer) RenderNotFound() ([]byte, error) {
	return r.renderPage(notFoundPage)
}

func (r *Renderer) renderPage(page pages.Page) ([]byte, error) {
	v := view{
		Clinic:       r.clinic,
		Page:         page,
		Layout:       r.opts.Layout,
		Nav:          pages.Navigation(r.opts.Layout, page.ID),
		Year:         r.opts.Year,
		ServicesHref: pages.SectionHref(r.opts.Layout, domain.PageServices),
		Featured:     pages.Featured,
		Catalog:      pages.Catalog,
		Credentials:  pages.Credentials,
		OfficeHours:  pages.OfficeHours,
		Expectations: pages.Expectations,
	}

	v.Body = make([]template.HTML, 0, len(page.Sections))
	for _, section := range page.Sections {
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, string(section), v); err != nil {
			return nil, fmt.Errorf("render section %s of %s: %w", section, page.Title, err)
		}
		// Output of html/template is already escaped.
		v.Body = append(v.Body, template.HTML(buf.String()))
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "layout", v); err != nil {
		return nil, fmt.Errorf("render layout of %s: %w", page.Title, err)
	}

	return buf.Bytes(), nil
}
