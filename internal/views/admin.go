package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/visitors"
)

// Privacy explains what the visitor log keeps.
func Privacy() g.Node {
	return Document("Privacy Policy",
		Main(
			Class("container mx-auto px-4 py-20 max-w-3xl space-y-6 text-gray-300"),
			H1(Class("text-3xl font-bold text-white"), g.Text("Privacy Policy")),
			P(g.Text("This site keeps a minimal visit log: a salted hash of your address, your browser's user agent, the page you opened and when.")),
			P(g.Text("Raw IP addresses are never stored. Requests carrying a Do Not Track header are not recorded at all, and entries are deleted after twelve months.")),
			P(g.Text("Messages sent through the contact form are delivered to the site owner and are not stored by this site.")),
			P(A(Href("/"), Class("text-[#66B2FF] hover:text-white"), g.Text("Back to the homepage"))),
		),
	)
}

// AdminLogin is the login form. errMsg is shown above it when non-empty.
func AdminLogin(errMsg string) g.Node {
	return Document("Admin Login",
		Main(
			Class("min-h-screen flex items-center justify-center"),
			FormEl(
				Method("post"),
				Action("/admin/login"),
				Class("w-full max-w-sm space-y-4 p-8 rounded-2xl border border-[#003366] bg-[#001a33]/50"),
				H1(Class("text-2xl font-semibold"), g.Text("Admin Login")),
				g.If(errMsg != "", P(Class("p-3 rounded bg-red-900/50 text-red-300"), g.Text(errMsg))),
				Input(Type("text"), Name("username"), Placeholder("Username"), Required(), Class(inputClass)),
				Input(Type("password"), Name("password"), Placeholder("Password"), Required(), Class(inputClass)),
				Button(Type("submit"), Class("w-full py-2 rounded bg-[#007FFF]"), g.Text("Sign in")),
			),
		),
	)
}

const inputClass = "w-full px-3 py-2 rounded bg-[#00264d] border border-[#003366] text-white"

// AdminDashboard shows visitor statistics.
func AdminDashboard(stats *visitors.Stats, sessions int) g.Node {
	return Document("Admin Dashboard",
		Main(
			Class("container mx-auto px-4 py-12 space-y-10"),
			Div(
				Class("flex items-center justify-between"),
				H1(Class("text-3xl font-bold"), g.Text("Dashboard")),
				Div(
					Class("space-x-4"),
					A(Href("/admin/export/stats"), Class("text-[#66B2FF]"), g.Text("Export JSON")),
					A(Href("/admin/logout"), Class("text-[#66B2FF]"), g.Text("Log out")),
				),
			),
			Div(
				Class("grid grid-cols-2 md:grid-cols-5 gap-4"),
				statCard("Total visits", stats.TotalVisitors),
				statCard("Unique visitors", stats.UniqueVisitors),
				statCard("Today", stats.VisitorsToday),
				statCard("This week", stats.VisitorsThisWeek),
				statCard("Open contact forms", int64(sessions)),
			),
			H2(Class("text-xl font-semibold"), g.Text("Top pages")),
			Table(
				Class("w-full text-left text-sm"),
				THead(Tr(Th(g.Text("Path")), Th(g.Text("Views")))),
				TBody(g.Map(stats.TopPaths, func(c visitors.Count) g.Node {
					return Tr(Td(g.Text(c.Path)), Td(g.Text(strconv.FormatInt(c.Views, 10))))
				})),
			),
			Div(
				Class("flex items-center justify-between"),
				H2(Class("text-xl font-semibold"), g.Text("Recent visitors")),
				A(Href("/admin/visitors"), Class("text-[#66B2FF]"), g.Text("View all")),
			),
			visitTable(stats.RecentVisitors),
		),
	)
}

// AdminVisitors lists the latest raw visits.
func AdminVisitors(visits []visitors.Visit) g.Node {
	return Document("Visitors",
		Main(
			Class("container mx-auto px-4 py-12 space-y-6"),
			Div(
				Class("flex items-center justify-between"),
				H1(Class("text-3xl font-bold"), g.Text("Visitors")),
				A(Href("/admin/dashboard"), Class("text-[#66B2FF]"), g.Text("Back to dashboard")),
			),
			g.If(len(visits) == 0, P(Class("text-gray-400"), g.Text("No visits recorded yet."))),
			g.If(len(visits) > 0, visitTable(visits)),
		),
	)
}

func visitTable(visits []visitors.Visit) g.Node {
	return Table(
		Class("w-full text-left text-sm"),
		THead(Tr(Th(g.Text("When")), Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")))),
		TBody(g.Map(visits, func(v visitors.Visit) g.Node {
			return Tr(
				Td(g.Text(v.VisitedAt.Format("2006-01-02 15:04"))),
				Td(Code(g.Text(v.HashedIP))),
				Td(g.Text(v.Path)),
				Td(Class("text-gray-400"), g.Text(v.UserAgent)),
			)
		})),
	)
}

func statCard(label string, value int64) g.Node {
	return Div(
		Class("p-4 rounded-xl border border-[#003366] bg-[#001a33]/50"),
		P(Class("text-sm text-gray-400"), g.Text(label)),
		P(Class("text-2xl font-bold"), g.Text(strconv.FormatInt(value, 10))),
	)
}
