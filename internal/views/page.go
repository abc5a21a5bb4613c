// Package views renders the site with gomponents. Interactive parts use HTMX
// attributes and talk to the routes served by package web.
package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@1.9.12"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// Document wraps body content in the HTML5 shell shared by every page.
func Document(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Script(Src(tailwindSrc)),
				Script(Src(htmxSrc)),
			),
			Body(
				Class("min-h-screen bg-black text-white"),
				g.Group(body),
			),
		),
	)
}

// Page is the single landing page: header, hero, skills, portfolio,
// experience, contact and footer.
func Page(site content.Site, form contact.State, ttl time.Duration) g.Node {
	return Document(site.Owner,
		siteHeader(site),
		Main(
			Hero(site),
			Skills(site),
			Portfolio(site),
			Experience(),
			ContactSection(site, form, ttl),
		),
		siteFooter(site),
	)
}

var navLinks = []struct{ label, href string }{
	{"Home", "#"},
	{"Skills", "#skills"},
	{"Portfolio", "#portfolio"},
	{"Experience", "#experience"},
	{"Contact", "#contact"},
}

func siteHeader(site content.Site) g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-50 bg-black/60 backdrop-blur-md border-b border-white/10"),
		Nav(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(Href("#"), Class("text-xl font-bold text-[#66B2FF]"), g.Text(site.Owner)),
			Ul(
				Class("hidden md:flex space-x-8"),
				g.Map(navLinks, func(l struct{ label, href string }) g.Node {
					return Li(A(Href(l.href), Class("text-gray-300 hover:text-white transition-colors"), g.Text(l.label)))
				}),
			),
		),
	)
}

func siteFooter(site content.Site) g.Node {
	return Footer(
		Class("py-8 border-t border-white/10 text-center text-gray-500 text-sm"),
		P(g.Textf("© %d %s. All rights reserved.", time.Now().Year(), site.Owner)),
		P(A(Href("/privacy"), Class("hover:text-white"), g.Text("Privacy Policy"))),
	)
}
