package views

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
)

// ContactSection is the contact info column next to the form.
func ContactSection(site content.Site, form contact.State, ttl time.Duration) g.Node {
	return Section(
		ID("contact"),
		Class("py-20 bg-gradient-to-b from-[#001a33] to-[#000d1a]"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading("Get In Touch", "Have a project in mind or want to discuss potential opportunities? Feel free to reach out!"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
				contactInfo(site),
				Div(
					Class("bg-[#001a33]/50 rounded-2xl p-8 border border-[#003366]"),
					H3(Class("text-2xl font-semibold text-white mb-8"), g.Text("Send Me a Message")),
					ContactForm(form, ttl),
				),
			),
		),
	)
}

func contactInfo(site content.Site) g.Node {
	return Div(
		Class("space-y-8"),
		H3(Class("text-2xl font-semibold text-white"), g.Text("Contact Information")),
		P(Class("text-gray-400"), g.Text(site.ContactIntro)),
		Div(
			Class("space-y-6"),
			g.Map(site.ContactMethods, func(m content.ContactMethod) g.Node {
				var value g.Node
				if m.Href != "" {
					value = A(Href(m.Href), Class("text-[#66B2FF] hover:text-white"), g.Text(m.Value))
				} else {
					value = P(Class("text-gray-400"), g.Text(m.Value))
				}
				return Div(
					Class("flex items-start space-x-4"),
					Div(Class("p-3 rounded-xl "+m.Color)),
					Div(H4(Class("font-medium text-white"), g.Text(m.Title)), value),
				)
			}),
		),
		Div(
			Class("pt-4"),
			H4(Class("font-medium text-white mb-4"), g.Text("Follow Me")),
			Div(
				Class("flex space-x-4"),
				g.Map(site.SocialLinks, func(s content.SocialLink) g.Node {
					return A(Href(s.Href), Target("_blank"), Rel("noopener noreferrer"), Aria("label", s.Label),
						Class("p-3 bg-[#00264d] text-[#66B2FF] rounded-full hover:text-white"), g.Text(s.Label))
				}),
			),
		),
	)
}

// ContactForm is the swappable form fragment. The whole form is replaced on
// submit; each input reports its value as the visitor types.
func ContactForm(form contact.State, ttl time.Duration) g.Node {
	label := "Send Message"
	if form.Submitting() {
		label = "Sending..."
	}
	return FormEl(
		ID("contact-form"),
		Class("space-y-6"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		Banner(form.Result, ttl),
		textInput(contact.FieldName, "text", "Your Name", "John Doe", form.Fields.Name),
		textInput(contact.FieldEmail, "email", "Email Address", "you@example.com", form.Fields.Email),
		Div(
			fieldLabel(contact.FieldMessage, "Message"),
			Textarea(
				append(fieldAttrs(contact.FieldMessage, "Your message here..."), Rows("5"), g.Text(form.Fields.Message))...,
			),
		),
		Div(
			Class("pt-2"),
			Button(
				Type("submit"),
				Class("w-full px-6 py-3 bg-gradient-to-r from-[#007FFF] to-[#3399FF] text-white font-medium rounded-lg disabled:opacity-50 disabled:cursor-not-allowed"),
				g.If(form.Submitting(), Disabled()),
				g.Text(label),
			),
		),
	)
}

// Banner shows the submission result. A visible banner asks for itself again
// once ttl has passed, which picks up the cleared state.
func Banner(result *contact.ResultMessage, ttl time.Duration) g.Node {
	if result == nil {
		return Div(ID("contact-banner"))
	}
	style := "bg-red-900/50 text-red-300"
	if result.Success {
		style = "bg-green-900/50 text-green-300"
	}
	return Div(
		ID("contact-banner"),
		Class("p-4 mb-6 rounded-lg "+style),
		g.Attr("role", "status"),
		g.Attr("hx-get", "/contact/banner"),
		g.Attr("hx-trigger", fmt.Sprintf("load delay:%dms", ttl.Milliseconds())),
		g.Attr("hx-swap", "outerHTML"),
		g.Text(result.Text),
	)
}

func textInput(field contact.Field, kind, label, placeholder, value string) g.Node {
	attrs := append(fieldAttrs(field, placeholder), Type(kind), Value(value))
	return Div(fieldLabel(field, label), Input(attrs...))
}

func fieldLabel(field contact.Field, text string) g.Node {
	return Label(For(field.String()), Class("block text-sm font-medium text-gray-300 mb-2"), g.Text(text))
}

func fieldAttrs(field contact.Field, placeholder string) []g.Node {
	return []g.Node{
		ID(field.String()),
		Name(field.String()),
		Placeholder(placeholder),
		Required(),
		Class("w-full px-4 py-3 bg-[#00264d] border border-[#003366] rounded-lg text-white placeholder-gray-500"),
		g.Attr("hx-post", "/contact/field"),
		g.Attr("hx-trigger", "input changed delay:300ms"),
		g.Attr("hx-swap", "none"),
	}
}
