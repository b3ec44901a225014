package domain

import "fmt"

// PageID identifies one of the site's pages.
type PageID string

const (
	PageHome     PageID = "home"
	PageAbout    PageID = "about"
	PageServices PageID = "services"
	PageContact  PageID = "contact"
)

// IsValid checks if the page is one of the known pages.
func (p PageID) IsValid() bool {
	switch p {
	case PageHome, PageAbout, PageServices, PageContact:
		return true
	default:
		return false
	}
}

// Layout selects how pages are laid out and linked.
type Layout string

const (
	// LayoutMulti serves every page under its own path.
	LayoutMulti Layout = "multi"
	// LayoutSingle serves one page whose sections are reached by anchors.
	LayoutSingle Layout = "single"
)

// ParseLayout converts a string to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutMulti, LayoutSingle:
		return Layout(s), nil
	default:
		return "", fmt.Errorf("%w: %q, expected multi or single", ErrInvalidLayout, s)
	}
}

// NavLink is an entry of the navigation header.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Link is an outbound call-to-action opened in a new browsing context.
type Link struct {
	Href  string
	Label string
}
