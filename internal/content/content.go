// Package content holds the copy shown on the site.
package content

// Service is one tile in the hero banner.
type Service struct {
	Name string
	Icon string
}

// Skill is a single technology in the skills showcase.
type Skill struct {
	Name        string
	Description string
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string
	Skills []Skill
}

// Project is a portfolio grid card. GitHub and Live are optional.
type Project struct {
	ID          int
	Title       string
	Description string
	Tags        []string
	Image       string
	GitHub      string
	Live        string
	Gradient    string
}

// ContactMethod is a line in the contact info column. Href is optional.
type ContactMethod struct {
	Title string
	Value string
	Href  string
	Color string
}

// SocialLink is an icon link under "Follow Me".
type SocialLink struct {
	Label string
	Href  string
}

// Entry is one item on the experience timeline, either a job or a
// qualification. End is "Present" for ongoing entries.
type Entry struct {
	Title        string
	Organization string
	Start        string
	End          string
	Logo         string
	Highlights   []string
}

// Site is everything the page renders apart from the contact form state.
type Site struct {
	Owner           string
	Headline        string
	Subheadline     string
	Pitch           string
	About           string
	Services        []Service
	SkillCategories []SkillCategory
	Projects        []Project
	Work            []Entry
	Education       []Entry
	ContactIntro    string
	ContactMethods  []ContactMethod
	SocialLinks     []SocialLink
}

// AboutMe is the blurb under the skills heading.
var AboutMe = `I love building software that's both useful and fun, and I'm always curious about how things work behind the scenes.
Most of my projects start with a simple idea and turn into a chance to learn something new, whether it's exploring a
different language, experimenting with tools, or solving tricky problems.`

// Default returns the site copy.
func Default() Site {
	return Site{
		Owner:       "Portfolio",
		Headline:    "Transform Your Ideas",
		Subheadline: "Into Powerful Digital Experiences",
		Pitch:       "Custom web and mobile solutions that drive results. Let's build something amazing together.",
		About:       AboutMe,
		Services: []Service{
			{Name: "Web Development", Icon: "💻"},
			{Name: "Mobile Apps", Icon: "📱"},
			{Name: "UI/UX Design", Icon: "🎨"},
			{Name: "E-commerce", Icon: "🛒"},
		},
		SkillCategories: []SkillCategory{
			{Title: "Frontend", Skills: []Skill{
				{"React", "Building interactive UIs with React and Next.js"},
				{"TypeScript", "Type-safe JavaScript for better developer experience"},
				{"Next.js", "Server-side rendering and static site generation"},
				{"Tailwind CSS", "Utility-first CSS framework for rapid UI development"},
			}},
			{Title: "Backend", Skills: []Skill{
				{".NET Core", "Building scalable APIs and microservices"},
				{"Node.js", "JavaScript runtime for server-side applications"},
				{"GraphQL", "Query language for APIs with efficient data loading"},
			}},
			{Title: "Cloud & DevOps", Skills: []Skill{
				{"Azure", "Cloud services and infrastructure"},
				{"AWS", "Cloud computing services"},
				{"Docker", "Containerization and deployment"},
			}},
			{Title: "Mobile", Skills: []Skill{
				{"React Native", "Cross-platform mobile development"},
			}},
			{Title: "Database", Skills: []Skill{
				{"PostgreSQL", "Relational database management"},
				{"MongoDB", "NoSQL database for flexible schemas"},
			}},
			{Title: "Tools", Skills: []Skill{
				{"Git", "Version control and collaboration"},
			}},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "E-Commerce Platform",
				Description: "A full-stack e-commerce solution with product management, cart functionality, and secure payment processing.",
				Tags:        []string{".NET Core", "React", "PostgreSQL", "Docker"},
				Image:       "/images/project1.jpg",
				GitHub:      "https://github.com",
				Live:        "https://example.com",
				Gradient:    "from-[#007FFF] to-[#0059B2]",
			},
			{
				ID:          2,
				Title:       "Task Management App",
				Description: "Real-time collaborative task management with instant updates and team collaboration features.",
				Tags:        []string{"React", "Node.js", "WebSocket", "MongoDB"},
				Image:       "/images/project2.jpg",
				GitHub:      "https://github.com",
				Gradient:    "from-[#68A063] to-[#3D7A35]",
			},
			{
				ID:          3,
				Title:       "Portfolio Website",
				Description: "A modern, performant portfolio website with smooth animations and responsive design.",
				Tags:        []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
				Image:       "/images/project3.jpg",
				GitHub:      "https://github.com",
				Live:        "https://example.com",
				Gradient:    "from-[#000000] to-[#333333]",
			},
			{
				ID:          4,
				Title:       "Cloud Infrastructure",
				Description: "Scalable cloud infrastructure with CI/CD pipelines and automated deployments.",
				Tags:        []string{"AWS", "Terraform", "Docker", "Kubernetes"},
				Image:       "/images/project4.jpg",
				GitHub:      "https://github.com",
				Gradient:    "from-[#FF9900] to-[#FF6B00]",
			},
		},
		Work: []Entry{
			{
				Title:        "Presentation Expert",
				Organization: "Northwind Retail",
				Start:        "Aug 2023",
				End:          "Present",
				Logo:         "/images/work-retail.png",
				Highlights: []string{
					"Executed over 300 merchandising transitions on tight timelines by organizing team workflows",
					"Streamlined communication between floor and logistics teams while managing backroom inventory",
					"Standardized daily pricing and signage checks across departments",
				},
			},
			{
				Title:        "Manager",
				Organization: "Contoso Catered Events",
				Start:        "Aug 2016",
				End:          "Present",
				Logo:         "/images/work-catering.png",
				Highlights: []string{
					"Coordinated customized menus and made sure every dietary requirement was met",
					"Troubleshot AV equipment and ran digital order tracking for events",
					"Kept supply inventory and deliveries between venues on schedule",
				},
			},
		},
		Education: []Entry{
			{
				Title:        "Bachelor of Computer Science",
				Organization: "Western Governors University",
				Start:        "Sept 2019",
				End:          "May 2023",
				Logo:         "/images/edu-university.png",
				Highlights: []string{
					"Relevant coursework: Data Structures, Algorithms, Web Development",
					"Senior project: machine learning recommendation system",
				},
			},
			{
				Title:        "Project Management",
				Organization: "CompTIA",
				Start:        "July 2022",
				End:          "Present",
				Logo:         "/images/edu-certification.png",
				Highlights: []string{
					"Certified in agile project management methodology",
				},
			},
		},
		ContactIntro: "I'm always open to discussing product design work or partnership opportunities. Don't hesitate to get in touch!",
		ContactMethods: []ContactMethod{
			{Title: "Email", Value: "hello@example.com", Href: "mailto:hello@example.com", Color: "bg-[#0078D4]"},
			{Title: "Phone", Value: "+1 (234) 567-890", Href: "tel:+1234567890", Color: "bg-[#00A4EF]"},
			{Title: "Location", Value: "San Francisco, CA", Color: "bg-[#50E6FF]"},
		},
		SocialLinks: []SocialLink{
			{Label: "GitHub", Href: "https://github.com"},
			{Label: "LinkedIn", Href: "https://linkedin.com"},
			{Label: "Twitter", Href: "https://twitter.com"},
		},
	}
}
