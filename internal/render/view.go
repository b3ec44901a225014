package render

import (
	"html/template"

	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/pages"
)

// view is the data every template receives.
type view struct {
	Clinic domain.ClinicConfig
	Page   pages.Page
	Layout domain.Layout
	Nav    []domain.NavLink
	Year   int

	ServicesHref string

	Featured     []domain.ServiceListing
	Catalog      []domain.ServiceListing
	Credentials  []string
	OfficeHours  []string
	Expectations []pages.Expectation

	Body []template.HTML
}

// BookAppointment is the booking call-to-action of the header and closing sections.
func (v view) BookAppointment() domain.Link {
	return pages.BookingLink(v.Clinic, pages.LabelBookAppointment)
}

// BookConsultation is the booking call-to-action of the hero section.
func (v view) BookConsultation() domain.Link {
	return pages.BookingLink(v.Clinic, pages.LabelBookConsultation)
}

// BookOnline is the booking call-to-action of the contact section.
func (v view) BookOnline() domain.Link {
	return pages.BookingLink(v.Clinic, pages.LabelBookOnline)
}

// Heading is the main heading of pages that open with an intro section.
func (v view) Heading() string {
	if v.Page.ID == domain.PageAbout {
		return "About " + v.Clinic.PractitionerName
	}
	return v.Page.Title
}

// DocTitle is the document title shown in the browser tab.
func (v view) DocTitle() string {
	if v.Page.ID == domain.PageHome {
		return v.Clinic.Name
	}
	return v.Heading() + " | " + v.Clinic.Name
}
