package pages

import "github.com/mtlprog/clinicsite/internal/domain"

// Navigation returns the navigation links for the current page.
// The link matching current is the only one marked active. In the single
// layout links are in-page anchors on the home page and point back to the
// home page anywhere else, such as the not-found page.
func Navigation(layout domain.Layout, current domain.PageID) []domain.NavLink {
	links := make([]domain.NavLink, 0, len(navOrder))
	for _, id := range navOrder {
		page := multiPages[id]

		href := page.Path
		if layout == domain.LayoutSingle {
			href = SectionHref(layout, id)
			if current == domain.PageHome {
				href = "#" + page.Anchor
			}
		}

		links = append(links, domain.NavLink{
			Href:   href,
			Label:  page.Label,
			Active: id == current,
		})
	}
	return links
}

// SectionHref returns where the page's content is reached in layout.
func SectionHref(layout domain.Layout, id domain.PageID) string {
	page := multiPages[id]
	if layout == domain.LayoutSingle {
		return "/#" + page.Anchor
	}
	return page.Path
}
