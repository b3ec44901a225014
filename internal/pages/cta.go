package pages

import "github.com/mtlprog/clinicsite/internal/domain"

// Labels used on booking buttons.
const (
	LabelBookAppointment  = "Book Appointment"
	LabelBookConsultation = "Book Consultation"
	LabelBookOnline       = "Book Appointment Online"
)

// BookingLink points at the external booking system. The URL is trusted
// as configured; an unset URL degrades to the "#" placeholder.
func BookingLink(cfg domain.ClinicConfig, label string) domain.Link {
	href := cfg.BookingURL
	if href == "" {
		href = domain.DefaultBookingURL
	}
	return domain.Link{Href: href, Label: label}
}
