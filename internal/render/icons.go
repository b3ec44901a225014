package render

import (
	"html/template"

	"github.com/mtlprog/clinicsite/internal/domain"
)

// iconPaths holds the stroke path data of each glyph on a 24x24 grid.
var iconPaths = map[domain.Icon][]string{
	domain.IconHeart: {
		"M4.318 6.318a4.5 4.5 0 000 6.364L12 20.364l7.682-7.682a4.5 4.5 0 00-6.364-6.364L12 7.636l-1.318-1.318a4.5 4.5 0 00-6.364 0z",
	},
	domain.IconShield: {
		"M9 12l2 2 4-4m5.618-4.016A11.955 11.955 0 0112 2.944a11.955 11.955 0 01-8.618 3.04A12.02 12.02 0 003 9c0 5.591 3.824 10.29 9 11.622 5.176-1.332 9-6.031 9-11.622 0-1.042-.133-2.052-.382-3.016z",
	},
	domain.IconVideo: {
		"M8 7V3a1 1 0 011-1h6a1 1 0 011 1v4h3a2 2 0 012 2v6a2 2 0 01-2 2H5a2 2 0 01-2-2V9a2 2 0 012-2h3z",
	},
	domain.IconBolt: {
		"M13 10V3L4 14h7v7l9-11h-7z",
	},
	domain.IconDocument: {
		"M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z",
	},
	domain.IconSliders: {
		"M12 6V4m0 2a2 2 0 100 4m0-4a2 2 0 110 4m-6 8a2 2 0 100-4m0 4a2 2 0 100 4m0-4v2m0-6V4m6 6v10m6-2a2 2 0 100-4m0 4a2 2 0 100 4m0-4v2m0-6V4",
	},
	domain.IconClipboard: {
		"M9 5H7a2 2 0 00-2 2v6a2 2 0 002 2h2m0 0h2m-2 0v4l3-3m-3 3l-3-3",
	},
	domain.IconFamily: {
		"M17 20h5v-2a3 3 0 00-5.356-1.857M17 20H7m10 0v-2c0-.656-.126-1.283-.356-1.857M7 20H2v-2a3 3 0 015.356-1.857M7 20v-2c0-.656.126-1.283.356-1.857m0 0a5.002 5.002 0 019.288 0M15 7a3 3 0 11-6 0 3 3 0 016 0zm6 3a2 2 0 11-4 0 2 2 0 014 0zM7 10a2 2 0 11-4 0 2 2 0 014 0z",
	},
	domain.IconPhone: {
		"M3 5a2 2 0 012-2h3.28a1 1 0 01.948.684l1.498 4.493a1 1 0 01-.502 1.21l-2.257 1.13a11.042 11.042 0 005.516 5.516l1.13-2.257a1 1 0 011.21-.502l4.493 1.498a1 1 0 01.684.949V19a2 2 0 01-2 2h-1C9.716 21 3 14.284 3 6V5z",
	},
	domain.IconMail: {
		"M3 8l7.89 5.26a2 2 0 002.22 0L21 8M5 19h14a2 2 0 002-2V7a2 2 0 00-2-2H5a2 2 0 00-2 2v10a2 2 0 002 2z",
	},
	domain.IconPin: {
		"M17.657 16.657L13.414 20.9a1.998 1.998 0 01-2.827 0l-4.244-4.243a8 8 0 1111.314 0z",
		"M15 11a3 3 0 11-6 0 3 3 0 016 0z",
	},
	domain.IconClock: {
		"M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z",
	},
	domain.IconArrow: {
		"M9 5l7 7-7 7",
	},
}

// iconSVG renders a glyph as inline SVG. Unknown glyphs render as nothing.
func iconSVG(icon domain.Icon) template.HTML {
	paths, ok := iconPaths[icon]
	if !ok {
		return ""
	}

	svg := `<svg class="icon" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true">`
	for _, d := range paths {
		svg += `<path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="` + d + `"/>`
	}
	svg += `</svg>`

	// Path data is static and never derived from configuration.
	return template.HTML(svg)
}
