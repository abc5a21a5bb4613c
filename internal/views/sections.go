package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
)

// Hero is the full-height banner with the service tiles and calls to action.
func Hero(site content.Site) g.Node {
	return Section(
		ID("home"),
		Class("relative min-h-screen flex items-center justify-center overflow-hidden bg-gradient-to-br from-[#001a33] to-[#003366]"),
		Div(
			Class("container mx-auto px-4 relative z-10 text-center max-w-4xl"),
			H1(
				Class("text-4xl md:text-6xl font-bold text-white mb-6 leading-tight"),
				Span(Class("bg-clip-text text-transparent bg-gradient-to-r from-[#3399FF] to-[#66B2FF]"), g.Text(site.Headline)),
				Br(),
				Span(Class("text-2xl md:text-4xl font-medium text-gray-300 mt-4 block"), g.Text(site.Subheadline)),
			),
			P(Class("text-lg md:text-xl text-gray-300 mb-12 max-w-2xl mx-auto"), g.Text(site.Pitch)),
			Div(
				Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-12"),
				g.Map(site.Services, func(s content.Service) g.Node {
					return Div(
						Class("bg-white/5 p-6 rounded-xl border border-white/10 hover:border-[#3399FF]/50 transition-all duration-300"),
						Div(Class("text-3xl mb-3"), g.Text(s.Icon)),
						H3(Class("text-white font-medium"), g.Text(s.Name)),
					)
				}),
			),
			Div(
				Class("flex flex-col sm:flex-row justify-center gap-4"),
				A(Href("#contact"), Class("px-8 py-4 bg-gradient-to-r from-[#007FFF] to-[#3399FF] text-white font-semibold rounded-lg hover:opacity-90"), g.Text("Start Your Project")),
				A(Href("#portfolio"), Class("px-8 py-4 border border-white/20 text-white font-medium rounded-lg hover:bg-white/10"), g.Text("View My Work")),
			),
		),
	)
}

// Skills lists every skill category as a card.
func Skills(site content.Site) g.Node {
	return Section(
		ID("skills"),
		Class("py-20 bg-gradient-to-b from-[#001a33] to-[#000d1a]"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("Skills & Expertise", site.About),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(site.SkillCategories, skillCard),
			),
		),
	)
}

func skillCard(cat content.SkillCategory) g.Node {
	return Div(
		Class("bg-[#001a33]/50 rounded-2xl p-6 border border-[#003366]"),
		H3(Class("text-xl font-semibold text-white mb-4"), g.Text(cat.Title)),
		Ul(
			Class("space-y-4"),
			g.Map(cat.Skills, func(s content.Skill) g.Node {
				return Li(
					P(Class("font-medium text-white"), g.Text(s.Name)),
					P(Class("text-sm text-gray-400"), g.Text(s.Description)),
				)
			}),
		),
	)
}

// Portfolio is the project grid.
func Portfolio(site content.Site) g.Node {
	return Section(
		ID("portfolio"),
		Class("py-20 bg-gradient-to-b from-[#000d1a] to-[#001a33]"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("My Portfolio", "A selection of projects I've built recently."),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				g.Map(site.Projects, projectCard),
			),
		),
	)
}

func projectCard(p content.Project) g.Node {
	return Article(
		Class("rounded-2xl overflow-hidden border border-[#003366] bg-[#001a33]/50"),
		Div(Class("h-2 bg-gradient-to-r "+p.Gradient)),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-semibold text-white mb-2"), g.Text(p.Title)),
			P(Class("text-gray-400 mb-4"), g.Text(p.Description)),
			Ul(
				Class("flex flex-wrap gap-2 mb-4"),
				g.Map(p.Tags, func(tag string) g.Node {
					return Li(Class("px-3 py-1 text-xs rounded-full bg-[#00264d] text-[#66B2FF]"), g.Text(tag))
				}),
			),
			Div(
				Class("flex gap-4"),
				g.If(p.GitHub != "", externalLink(p.GitHub, "Code")),
				g.If(p.Live != "", externalLink(p.Live, "Live Demo")),
			),
		),
	)
}

func sectionHeading(title, lead string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-3xl md:text-5xl font-bold mb-4 bg-gradient-to-r from-[#3399FF] to-[#66B2FF] bg-clip-text text-transparent"), g.Text(title)),
		P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text(lead)),
	)
}

func externalLink(href, label string) g.Node {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), Class("text-[#66B2FF] hover:text-white"), g.Text(label))
}
