package portfolio

// Profile is the owner of the portfolio.
type Profile struct {
	Name        string
	Title       string
	Tagline     string
	Bio         string
	LinkedInURL string
	AvatarURL   string
}

// Testimonial is a client quote.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

// Badge is a partner mark shown above the testimonials.
type Badge struct {
	Accent string
	Label  string
}

// SkillGroup is one column of the experience grid.
type SkillGroup struct {
	Heading string
	Items   []string
}

func DefaultProfile() Profile {
	return Profile{
		Name:        "Zakaria Boulagjame",
		Title:       "AI Workflow & Automation Specialist",
		Tagline:     "From Scientific Rigor to Business Scalability",
		Bio:         "I apply the laws of physics to business logic: Efficiency is mandatory. Friction is eliminated. I build systems that work while you sleep. I engineer self-driving businesses using n8n, Python, and Large Language Models.",
		LinkedInURL: "https://www.linkedin.com/in/zakaria-boulagjame/",
		AvatarURL:   "https://ui-avatars.com/api/?name=Zakaria+Boulagjame&background=a3ffce&color=120b2e&size=256",
	}
}

// SeedProjects are shown until the store returns at least one project.
func SeedProjects() []Project {
	return []Project{
		{
			ID:          "1",
			Title:       "MyMentor OS",
			Description: "Automated 100% of User Onboarding & Curriculum Generation. Scalable architecture for real-time personalized learning paths.",
			Tags:        []string{"React", "TypeScript", "Google Gemini API", "Supabase", "Tailwind CSS"},
			ImageURL:    "https://placehold.co/800x600/120b2e/a3ffce?text=MyMentor+OS&font=montserrat",
			CaseStudy:   "Designed a scalable architecture using Supabase for real-time data or generating dynamic learning content. 40% increased engagement.",
		},
		{
			ID:          "2",
			Title:       "Modjex Smart Inventory",
			Description: "Real-Time Profit Tracking that Eliminated Spreadsheets. A unified dashboard for inventory value and margin analysis.",
			Tags:        []string{"React", "Data Visualization", "CSV Parsing", "Gemini"},
			ImageURL:    "https://placehold.co/800x600/120b2e/a3ffce?text=MODJEX&font=montserrat",
			CaseStudy:   "Integrated CSV parsing for legacy data import and used Gemini to categorize messy inventory data automatically, saving 15+ hours/week.",
		},
		{
			ID:          "3",
			Title:       "BizCard AI",
			Description: "99% Accuracy Lead Extraction (Zero Manual Entry). Transforms physical cards into CRM-ready assets in seconds.",
			Tags:        []string{"React (TypeScript)", "Supabase", "Gemini Vision", "Tailwind CSS"},
			ImageURL:    "https://placehold.co/800x600/120b2e/a3ffce?text=BizCard+AI&font=montserrat",
			CaseStudy:   "Leveraged Gemini Pro Vision to extract text from complex card layouts with 99% accuracy. Syncs contacts directly to CRM.",
		},
	}
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Quote:  "Zakaria didn't just automate our lead flow; he completely re-engineered our sales process. We're getting 3x the qualified leads with zero manual data entry.",
			Author: "Sarah Jenkins",
			Role:   "COO, TechFlow Logistics",
		},
		{
			Quote:  "The custom ERP dashboard he built gave us visibility we didn't know was possible. It's like having a dedicated analyst working 24/7.",
			Author: "Michael Ross",
			Role:   "Founder, EcomScale",
		},
	}
}

func Badges() []Badge {
	return []Badge{
		{Accent: "n8n", Label: "Expert"},
		{Accent: "Make", Label: "Partner"},
		{Accent: "OpenAI", Label: "Build"},
	}
}

func Skills() []SkillGroup {
	return []SkillGroup{
		{Heading: "CORE STACK", Items: []string{"n8n", "Make.com", "Zapier"}},
		{Heading: "DEVELOPMENT", Items: []string{"Python", "JavaScript", "React"}},
		{Heading: "AI MODELS", Items: []string{"Gemini 3.0", "GPT-5", "Claude 4.5"}},
		{Heading: "BUSINESS", Items: []string{"B2B Sales", "E-commerce", "CRM Ops"}},
	}
}

// Showcase returns the stored projects, or the seed set when none exist.
func Showcase(stored []Project) []Project {
	if len(stored) > 0 {
		return stored
	}
	return SeedProjects()
}
