package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/content"
)

const experiencePanel = "experience-panel"

// Experience is the work/education section. The panel starts empty and
// loads the work timeline from /work-content once the page is up; the tabs
// swap it with the other fragment.
func Experience() g.Node {
	return Section(
		ID("experience"),
		Class("py-20 bg-[#000d1a]"),
		Div(
			Class("container mx-auto px-4 max-w-4xl"),
			sectionHeading("Experience", "Where I've worked and what I've studied."),
			Div(
				Class("flex justify-center gap-4 mb-10"),
				experienceTab("Work", "/work-content"),
				experienceTab("Education", "/education-content"),
			),
			Div(
				ID(experiencePanel),
				g.Attr("hx-get", "/work-content"),
				g.Attr("hx-trigger", "load"),
				P(Class("text-center text-gray-500"), g.Text("Loading...")),
			),
		),
	)
}

func experienceTab(label, target string) g.Node {
	return Button(
		Type("button"),
		Class("px-6 py-2 rounded-full border border-[#003366] text-gray-300 hover:bg-[#00264d] hover:text-white"),
		g.Attr("hx-get", target),
		g.Attr("hx-target", "#"+experiencePanel),
		g.Text(label),
	)
}

// Timeline renders entries as the fragment swapped into the experience
// panel.
func Timeline(entries []content.Entry) g.Node {
	return Ol(
		Class("relative border-l border-[#003366] space-y-10"),
		g.Map(entries, timelineEntry),
	)
}

func timelineEntry(e content.Entry) g.Node {
	return Li(
		Class("ml-6"),
		Div(
			Class("flex items-center gap-4 mb-2"),
			g.If(e.Logo != "", Img(Src(e.Logo), Alt(e.Organization+" logo"), Class("w-10 h-10 rounded object-contain bg-white"))),
			Div(
				H3(Class("text-lg font-semibold text-white"), g.Text(e.Title)),
				P(Class("text-[#66B2FF]"), g.Text(e.Organization)),
			),
		),
		Time(Class("block mb-3 text-sm text-gray-500"), g.Text(e.Start+" - "+e.End)),
		Ul(
			Class("list-disc list-inside space-y-1 text-gray-400"),
			g.Map(e.Highlights, func(h string) g.Node {
				return Li(g.Text(h))
			}),
		),
	)
}
