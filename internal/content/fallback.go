package content

import "slices"

// Built-in content served whenever the store has nothing for a query. The
// accessors return fresh slices so callers may reorder them freely.

const (
	DefaultSiteTitle = "Wayfindr Studio"
	DefaultHeroLine1 = "Navigating"
	DefaultHeroLine2 = "Brands"
	DefaultHeroLine3 = "Thru Chaos."

	FallbackFooterAboutText = "Wayfindr Studio is a strategic design agency. We combine Swiss precision with unexpected wit to build high-end digital experiences for reliable brands. Guided by curiosity and intellect, we create work that redefines ideas, shifts perceptions, and leaves an imprint across disciplines and industries."
)

var fallbackSocialLinks = []SocialLink{
	{Platform: "Instagram", URL: "#"},
	{Platform: "LinkedIn", URL: "#"},
	{Platform: "Behance", URL: "#"},
}

var fallbackContact = ContactInfo{
	Email:                 "hello@wayfindr.com",
	Address:               "1200 Broadway, New York, NY 10001",
	AvailabilityText:      "We are currently accepting new projects for",
	AvailabilityHighlight: "Q1 2026",
}

var fallbackBrands = []Brand{
	{ID: "1", Name: "Google"},
	{ID: "2", Name: "Nike"},
	{ID: "3", Name: "Aesop"},
	{ID: "4", Name: "Spotify"},
	{ID: "5", Name: "Tesla"},
	{ID: "6", Name: "Arket"},
	{ID: "7", Name: "Vitra"},
	{ID: "8", Name: "Polestar"},
}

var fallbackTestimonials = []Testimonial{
	{
		Quote:   "Wayfindr didn't just redesign our site, they completely restructured how we communicate our value. Brutal efficiency.",
		Author:  "Elena Fisher",
		Role:    "CMO",
		Company: "Apex Group",
	},
	{
		Quote:   "The balance between strict grid systems and absolute chaos is what makes their work stand out. Highly recommended.",
		Author:  "Marcus Chen",
		Role:    "Director",
		Company: "Mono Press",
	},
	{
		Quote:   "Reliable, fast, and unexpectedly funny. They turned a boring fintech product into something that feels like high fashion.",
		Author:  "Sarah Jenkins",
		Role:    "Founder",
		Company: "Vortex",
	},
}

const (
	strategyImage = "https://images.unsplash.com/photo-1552664730-d307ca884978?w=1200&h=1500&fit=crop"
	identityImage = "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=1200&h=1500&fit=crop"
)

var fallbackServices = []Service{
	{
		Title:       "Brand Strategy",
		Slug:        "brand-strategy",
		Description: "Positioning, architecture, and messaging that give the brand a sharp point of view.",
		HeroImage:   strategyImage,
		SubServices: []SubService{
			{Title: "Brand positioning", Description: "Define the promise and territory the brand owns."},
			{Title: "Market research", Description: "Insights and competitive mapping to validate direction."},
			{Title: "Competitive analysis", Description: "Differentiate with data-backed opportunities."},
			{Title: "Brand architecture", Description: "Clarify how products and lines ladder up."},
			{Title: "Messaging frameworks", Description: "Codify voice pillars and proof points."},
		},
	},
	{
		Title:       "Visual Identity",
		Slug:        "visual-identity",
		Description: "Systems, typography, and color that make the brand instantly recognizable.",
		HeroImage:   identityImage,
		SubServices: []SubService{
			{Title: "Logo design", Description: "Distinct marks tailored to the brand strategy."},
			{Title: "Visual systems", Description: "Grid, rhythm, and motion rules for consistency."},
			{Title: "Typography", Description: "Type stacks tuned for legibility and personality."},
			{Title: "Color palettes", Description: "Scalable palettes with accessibility in mind."},
			{Title: "Brand guidelines", Description: "Living standards for teams and partners."},
		},
	},
	{
		Title:       "Digital Experience",
		Slug:        "digital-experience",
		Description: "Product and marketing experiences built for speed, clarity, and conversion.",
		HeroImage:   identityImage,
		SubServices: []SubService{
			{Title: "UI/UX design", Description: "Flows and interfaces shaped by user needs."},
			{Title: "Web development", Description: "Performance-first builds on modern stacks."},
			{Title: "Mobile apps", Description: "Native-feeling experiences across devices."},
			{Title: "Motion design", Description: "Purposeful motion to guide and delight."},
			{Title: "Interactive prototypes", Description: "Test ideas fast before investing in build."},
		},
	},
	{
		Title:       "Brand Activation",
		Slug:        "brand-activation",
		Description: "Launches and campaigns that turn a brand system into measurable traction.",
		HeroImage:   strategyImage,
		SubServices: []SubService{
			{Title: "Launch campaigns", Description: "End-to-end creative to introduce products."},
			{Title: "Content strategy", Description: "Editorial plans aligned to the funnel."},
			{Title: "Social media", Description: "Platform-native assets and playbooks."},
			{Title: "Brand governance", Description: "Guardrails to keep teams on-brand."},
			{Title: "Employee engagement", Description: "Toolkits that align internal teams."},
		},
	},
	{
		Title:       "Verbal Identity",
		Slug:        "verbal-identity",
		Description: "Voice, tone, and naming that sound as intentional as the visuals look.",
		HeroImage:   identityImage,
		SubServices: []SubService{
			{Title: "Brand naming", Description: "Shortlists grounded in strategy and trademark sense."},
			{Title: "Tone of voice", Description: "Codify how the brand speaks in every channel."},
			{Title: "Messaging", Description: "Concise narratives for products and campaigns."},
			{Title: "Copywriting", Description: "On-brand language from headlines to UX microcopy."},
			{Title: "Editorial guidelines", Description: "Rules for punctuation, grammar, and cadence."},
		},
	},
	{
		Title:       "Creative Direction",
		Slug:        "creative-direction",
		Description: "Art direction that keeps imagery, motion, and production cohesive.",
		HeroImage:   strategyImage,
		SubServices: []SubService{
			{Title: "Art direction", Description: "Concepts, references, and shot lists for shoots."},
			{Title: "Photography", Description: "On-set guidance and post direction."},
			{Title: "3D visualization", Description: "CGI to prototype products and environments."},
			{Title: "Video production", Description: "Narrative and product films with tight pacing."},
			{Title: "Packaging design", Description: "Structural and graphic systems for shelf impact."},
		},
	},
}

var fallbackAgency = AgencyPage{
	TopLabel:          "The Agency",
	HeroLine1:         "Structured",
	HeroLine2:         "Wit.",
	HeroDescription:   "We believe that great design exists at the intersection of logic and emotion. We use rigid grids, precise typography, and data-driven strategies—then we break them.",
	HeroBottomText:    "It's this moment of disruption, the \"Wit\", that makes a brand memorable.",
	EstablishedYear:   "Since 2020",
	CapabilitiesTitle: "Capabilities",
	Capabilities: []Capability{
		{Title: "Brand Strategy", Items: []string{"Brand positioning", "market research", "competitive analysis", "brand architecture", "messaging frameworks"}},
		{Title: "Visual Identity", Items: []string{"Logo design", "visual systems", "typography", "color palettes", "brand guidelines"}},
		{Title: "Digital Experience", Items: []string{"UI/UX design", "web development", "mobile apps", "motion design", "interactive prototypes"}},
		{Title: "Brand Activation", Items: []string{"Launch campaigns", "content strategy", "social media", "brand governance", "employee engagement"}},
		{Title: "Verbal Identity", Items: []string{"Brand naming", "tone of voice", "messaging", "copywriting", "editorial guidelines"}},
		{Title: "Creative Direction", Items: []string{"Art direction", "photography", "3D visualization", "video production", "packaging design"}},
	},
	PhilosophyQuote:       "We don't just decorate. We solve business problems with aggressive aesthetics.",
	PhilosophyAttribution: "The Philosophy",
	IndustriesTitle:       "Industries We Work With",
	Industries: []string{
		"Retail & Fashion",
		"Cosmetics & Beauty",
		"Technology & SaaS",
		"Finance & Fintech",
		"Healthcare & Wellness",
		"B2B Services",
	},
}

var fallbackFAQs = []FAQItem{
	{
		Question: "What is your typical budget range?",
		Answer:   "Our engagements typically start at $15k for brand identity projects and $25k for digital experiences. We believe in delivering high-value, comprehensive solutions rather than quick fixes.",
	},
	{
		Question: "How long does a project take?",
		Answer:   "A standard identity and web project spans 8-12 weeks. We move fast, but we allocate significant time to strategy and discovery before a single pixel is placed.",
	},
	{
		Question: "Do you work with startups?",
		Answer:   "Yes, but only those who are ready to challenge their industry standards. We look for partners who appreciate bold decisions and structured wit.",
	},
	{
		Question: "What platforms do you build on?",
		Answer:   "We are a headless-first agency. We primarily utilize Next.js for the frontend and Sanity.io for content management to ensure performance and scalability.",
	},
}

var fallbackProjects = []Project{
	{
		Title:       "Apex Architecture",
		Slug:        "apex-architecture",
		Client:      "Apex Group",
		Year:        "2024",
		Services:    []string{"Identity", "Strategy", "Web"},
		Industry:    "Real Estate",
		Description: "Redefining the skyline through a brutalist digital experience.",
		Thumbnail:   "https://picsum.photos/800/600?random=1",
		HeroImage:   "https://picsum.photos/1920/1080?random=1",
		Brief:       "Apex needed to shed its corporate skin and embrace the raw materiality of their buildings. The challenge was to create a digital presence that felt as heavy and permanent as concrete, yet moved with the speed of modern web.",
		Content: []Block{
			{Type: BlockFullWidthImage, URL: "https://picsum.photos/1920/1200?random=11", Caption: "Homepage interaction study"},
			{Type: BlockRichText, Heading: "Materiality in Digital", Text: "We translated the tactile nature of concrete into a strict grid system. Zero border radius, heavy typography, and monochromatic imagery allow the architectural photography to take center stage."},
			{Type: BlockDualGrid, Images: []Image{
				{URL: "https://picsum.photos/800/800?random=12"},
				{URL: "https://picsum.photos/800/800?random=13"},
			}},
			{Type: BlockStat, Number: "40%", Label: "Increase in Lead Generation"},
		},
	},
	{
		Title:       "Lumina Labs",
		Slug:        "lumina-labs",
		Client:      "Lumina",
		Year:        "2023",
		Services:    []string{"Packaging", "Art Direction"},
		Industry:    "Beauty",
		Description: "Illuminating the science of skincare with clinical precision.",
		Thumbnail:   "https://picsum.photos/800/600?random=2",
		HeroImage:   "https://picsum.photos/1920/1080?random=2",
		Brief:       "Lumina stands at the intersection of nature and laboratory science. They needed a packaging system that felt pharmaceutical but luxurious enough for high-end retail shelves.",
		Content: []Block{
			{Type: BlockTripleGrid, Images: []Image{
				{URL: "https://picsum.photos/500/800?random=21"},
				{URL: "https://picsum.photos/500/800?random=22"},
				{URL: "https://picsum.photos/500/800?random=23"},
			}},
			{Type: BlockRichText, Text: "The typography (General Sans) was paired with technical diagrams to suggest efficacy. The color palette was restricted to pure white and a holographic foil."},
			{Type: BlockFullWidthImage, URL: "https://picsum.photos/1920/1000?random=24"},
		},
	},
	{
		Title:       "Mono Magazine",
		Slug:        "mono-magazine",
		Client:      "Mono Press",
		Year:        "2025",
		Services:    []string{"Editorial", "Digital"},
		Industry:    "Publishing",
		Description: "A typographically driven platform for minimalists.",
		Thumbnail:   "https://picsum.photos/800/600?random=3",
		HeroImage:   "https://picsum.photos/1920/1080?random=3",
		Brief:       "Mono Magazine required a complete overhaul of their reading experience. The goal was to remove all distractions, leaving only the text and the reader.",
		Content: []Block{
			{Type: BlockFullWidthImage, URL: "https://picsum.photos/1920/1080?random=31"},
			{Type: BlockDualGrid, Images: []Image{
				{URL: "https://picsum.photos/800/1000?random=32"},
				{URL: "https://picsum.photos/800/1000?random=33"},
			}},
			{Type: BlockRichText, Heading: "Typography First", Text: "We utilized a high-contrast serif for display usage to bring a sense of history and authority, contrasted with a utilitarian sans-serif for UI elements."},
		},
	},
	{
		Title:       "Vortex Financial",
		Slug:        "vortex-financial",
		Client:      "Vortex",
		Year:        "2024",
		Services:    []string{"App Design", "Identity"},
		Industry:    "Fintech",
		Description: "Simplifying complex data streams for the modern trader.",
		Thumbnail:   "https://picsum.photos/800/600?random=4",
		HeroImage:   "https://picsum.photos/1920/1080?random=4",
		Brief:       "Traders need clarity, not noise. Vortex approached us to redesign their terminal interface to reduce cognitive load while maintaining data density.",
		Content: []Block{
			{Type: BlockFullWidthImage, URL: "https://picsum.photos/1920/1200?random=41"},
			{Type: BlockStat, Number: "200ms", Label: "Latency Reduction"},
		},
	},
}

func FallbackSocialLinks() []SocialLink { return slices.Clone(fallbackSocialLinks) }

func FallbackContact() ContactInfo { return fallbackContact }

// FallbackSiteSettings combines the fallback links, contact details and
// footer text.
func FallbackSiteSettings() SiteSettings {
	return SiteSettings{
		SocialLinks:     FallbackSocialLinks(),
		ContactInfo:     fallbackContact,
		FooterAboutText: FallbackFooterAboutText,
	}
}

func FallbackBrands() []Brand { return slices.Clone(fallbackBrands) }

func FallbackTestimonials() []Testimonial { return slices.Clone(fallbackTestimonials) }

func FallbackServices() []Service { return slices.Clone(fallbackServices) }

// FallbackAgencyPage returns the agency page including its services.
func FallbackAgencyPage() AgencyPage {
	a := fallbackAgency
	a.Capabilities = slices.Clone(fallbackAgency.Capabilities)
	a.Industries = slices.Clone(fallbackAgency.Industries)
	a.Services = FallbackServices()
	return a
}

func FallbackFAQs() []FAQItem { return slices.Clone(fallbackFAQs) }

func FallbackProjects() []Project { return slices.Clone(fallbackProjects) }

// FallbackProject returns the built-in project with the given slug.
func FallbackProject(slug string) (Project, bool) {
	for _, p := range fallbackProjects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// FallbackService returns the built-in service with the given slug.
func FallbackService(slug string) (Service, bool) {
	for _, s := range fallbackServices {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
