// Package pages holds the fixed content of the clinic site: one descriptor
// per page, the service listings, the navigation composer and the booking
// call-to-action.
package pages

import (
	"fmt"

	"github.com/mtlprog/clinicsite/internal/domain"
)

// Section names a body template. Each page body is an ordered list of them.
type Section string

const (
	SectionHero       Section = "section-hero"
	SectionHighlights Section = "section-highlights"
	SectionIntro      Section = "section-intro"
	SectionAboutBrief Section = "section-about-brief"
	SectionAboutFull  Section = "section-about-full"
	SectionServices   Section = "section-services"
	SectionContact    Section = "section-contact"
	SectionExpect     Section = "section-expect"
	SectionBookCTA    Section = "section-book-cta"
)

// Page describes one page: where it lives and which sections make its body.
type Page struct {
	ID       domain.PageID
	Path     string
	Anchor   string
	Label    string
	Title    string
	Tagline  string
	Sections []Section
}

var navOrder = []domain.PageID{
	domain.PageHome,
	domain.PageAbout,
	domain.PageServices,
	domain.PageContact,
}

var multiPages = map[domain.PageID]Page{
	domain.PageHome: {
		ID:       domain.PageHome,
		Path:     "/",
		Anchor:   "home",
		Label:    "Home",
		Title:    "Modern Healthcare Made Personal",
		Tagline:  "Compassionate, evidence-based care with a personal touch.",
		Sections: []Section{SectionHero, SectionHighlights, SectionBookCTA},
	},
	domain.PageAbout: {
		ID:       domain.PageAbout,
		Path:     "/about",
		Anchor:   "about",
		Label:    "About",
		Title:    "About",
		Tagline:  "Learn more about my background, experience, and approach to healthcare.",
		Sections: []Section{SectionIntro, SectionAboutFull},
	},
	domain.PageServices: {
		ID:       domain.PageServices,
		Path:     "/services",
		Anchor:   "services",
		Label:    "Services",
		Title:    "Healthcare Services",
		Tagline:  "Comprehensive care tailored to your individual health needs.",
		Sections: []Section{SectionIntro, SectionServices, SectionBookCTA},
	},
	domain.PageContact: {
		ID:       domain.PageContact,
		Path:     "/contact",
		Anchor:   "contact",
		Label:    "Contact",
		Title:    "Contact & Appointments",
		Tagline:  "Ready to take the next step in your health journey? Schedule your appointment today.",
		Sections: []Section{SectionIntro, SectionContact, SectionExpect},
	},
}

// singleHome is the only page of the single layout; it stacks every section.
var singleHome = Page{
	ID:      domain.PageHome,
	Path:    "/",
	Anchor:  "home",
	Label:   "Home",
	Title:   "Modern Healthcare Made Personal",
	Tagline: "Compassionate, evidence-based care with a personal touch.",
	Sections: []Section{
		SectionHero,
		SectionHighlights,
		SectionAboutBrief,
		SectionContact,
	},
}

// Get returns the descriptor of page id in the given layout.
func Get(layout domain.Layout, id domain.PageID) (Page, error) {
	switch layout {
	case domain.LayoutSingle:
		if id != domain.PageHome {
			return Page{}, fmt.Errorf("%w: %s is a section of the single-page layout", domain.ErrUnknownPage, id)
		}
		return singleHome, nil
	case domain.LayoutMulti:
		page, ok := multiPages[id]
		if !ok {
			return Page{}, fmt.Errorf("%w: %s", domain.ErrUnknownPage, id)
		}
		return page, nil
	default:
		return Page{}, fmt.Errorf("%w: %q", domain.ErrInvalidLayout, layout)
	}
}

// List returns the pages served by layout, in navigation order.
func List(layout domain.Layout) []Page {
	if layout == domain.LayoutSingle {
		return []Page{singleHome}
	}

	list := make([]Page, 0, len(navOrder))
	for _, id := range navOrder {
		list = append(list, multiPages[id])
	}
	return list
}
