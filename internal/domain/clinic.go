package domain

import "strings"

// Fallback values for optional clinic settings.
const (
	DefaultPhone      = "(555) 123-4567"
	DefaultAddress    = "123 Healthcare Ave, City, State 12345"
	DefaultBookingURL = "#"
)

// ClinicConfig identifies the clinic on every rendered page.
// It is loaded once at startup and never mutated afterwards. Unset optional
// fields take their fallbacks in Normalize.
type ClinicConfig struct {
	Name             string `env:"CLINIC_NAME" validate:"required"`
	PractitionerName string `env:"NP_FIRST_NAME" validate:"required"`
	Phone            string `env:"CLINIC_PHONE"`
	Address          string `env:"CLINIC_ADDRESS"`
	BookingURL       string `env:"BOOKING_URL"`
	Email            string `env:"CLINIC_EMAIL"`
}

// Normalize returns a copy with surrounding whitespace trimmed and empty
// optional fields set to their fallbacks. Required fields are left blank.
func (c ClinicConfig) Normalize() ClinicConfig {
	c.Name = strings.TrimSpace(c.Name)
	c.PractitionerName = strings.TrimSpace(c.PractitionerName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.BookingURL = strings.TrimSpace(c.BookingURL)
	c.Email = strings.TrimSpace(c.Email)

	if c.Phone == "" {
		c.Phone = DefaultPhone
	}
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.BookingURL == "" {
		c.BookingURL = DefaultBookingURL
	}
	return c
}

// ServiceListing is one card in a fixed list of offered services.
type ServiceListing struct {
	Title       string
	Description string
	Icon        Icon
}

// Icon names a decorative glyph from the static icon set.
type Icon string

const (
	IconHeart     Icon = "heart"
	IconShield    Icon = "shield"
	IconVideo     Icon = "video"
	IconBolt      Icon = "bolt"
	IconDocument  Icon = "document"
	IconSliders   Icon = "sliders"
	IconClipboard Icon = "clipboard"
	IconFamily    Icon = "family"
	IconPhone     Icon = "phone"
	IconMail      Icon = "mail"
	IconPin       Icon = "pin"
	IconClock     Icon = "clock"
	IconArrow     Icon = "arrow"
)
