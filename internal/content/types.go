package content

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by the document store when a document is missing.
var ErrNotFound = errors.New("content: document not found")

// DocType identifies a kind of content document.
type DocType string

const (
	TypeSiteSettings DocType = "siteSettings"
	TypeHomepage     DocType = "homepage"
	TypeAgencyPage   DocType = "agencyPage"
	TypeService      DocType = "service"
	TypeBrand        DocType = "brand"
	TypeTestimonial  DocType = "testimonial"
	TypeFAQ          DocType = "faq"
	TypeProject      DocType = "project"
)

// DocTypes lists every known document type.
var DocTypes = []DocType{
	TypeSiteSettings, TypeHomepage, TypeAgencyPage, TypeService,
	TypeBrand, TypeTestimonial, TypeFAQ, TypeProject,
}

// Valid reports whether t is a known document type.
func (t DocType) Valid() bool {
	for _, k := range DocTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Singleton reports whether at most one document of type t exists. A
// singleton is stored with its type name as the slug.
func (t DocType) Singleton() bool {
	switch t {
	case TypeSiteSettings, TypeHomepage, TypeAgencyPage:
		return true
	}
	return false
}

// Document is one stored content record. Body holds the JSON-encoded
// record for the type.
type Document struct {
	ID        string    `json:"id"`
	Type      DocType   `json:"type"`
	Slug      string    `json:"slug"`
	Order     int       `json:"order"`
	Body      []byte    `json:"-"`
	// Source is the content file the document was imported from.
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ContactInfo struct {
	Email                 string `json:"email"`
	Address               string `json:"address"`
	AvailabilityText      string `json:"availabilityText"`
	AvailabilityHighlight string `json:"availabilityHighlight"`
}

// SiteSettings is the site-wide header/footer data.
type SiteSettings struct {
	SocialLinks     []SocialLink `json:"socialLinks,omitempty"`
	ContactInfo     ContactInfo  `json:"contactInfo"`
	FooterAboutText string       `json:"footerAboutText,omitempty"`
	// FooterLogoSVG is the URL of an uploaded logo image.
	FooterLogoSVG string `json:"footerLogoSvg,omitempty"`
}

// Homepage holds the home hero copy. Empty fields use the built-in defaults.
type Homepage struct {
	Title     string `json:"title,omitempty"`
	HeroLine1 string `json:"heroLine1,omitempty"`
	HeroLine2 string `json:"heroLine2,omitempty"`
	HeroLine3 string `json:"heroLine3,omitempty"`
}

type Capability struct {
	Title string   `json:"title"`
	Slug  string   `json:"slug,omitempty"`
	Items []string `json:"items"`
}

// Href links a capability to its service page. Without an explicit slug
// the title is lowercased with whitespace runs replaced by dashes.
func (c Capability) Href() string {
	slug := c.Slug
	if slug == "" {
		slug = strings.Join(strings.Fields(strings.ToLower(c.Title)), "-")
	}
	return "/services/" + slug
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

type SubService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is one agency offering, reachable at /services/{slug}.
type Service struct {
	Title                 string       `json:"title"`
	Slug                  string       `json:"slug"`
	Description           string       `json:"description"`
	HeroImage             string       `json:"heroImage,omitempty"`
	UseCustomServiceImage bool         `json:"useCustomServiceImage,omitempty"`
	SubServices           []SubService `json:"subServices,omitempty"`
	Order                 int          `json:"order,omitempty"`
}

type AgencyPage struct {
	TopLabel              string       `json:"topLabel"`
	HeroLine1             string       `json:"heroLine1"`
	HeroLine2             string       `json:"heroLine2"`
	HeroDescription       string       `json:"heroDescription"`
	HeroBottomText        string       `json:"heroBottomText"`
	EstablishedYear       string       `json:"establishedYear"`
	CapabilitiesTitle     string       `json:"capabilitiesTitle"`
	Capabilities          []Capability `json:"capabilities"`
	Services              []Service    `json:"services,omitempty"`
	PhilosophyQuote       string       `json:"philosophyQuote"`
	PhilosophyAttribution string       `json:"philosophyAttribution"`
	IndustriesTitle       string       `json:"industriesTitle,omitempty"`
	Industries            []string     `json:"industries,omitempty"`
	Stats                 []Stat       `json:"stats,omitempty"`
}

type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type Testimonial struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProjectRef is the short form of a project used in "related" lists.
type ProjectRef struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Thumbnail string `json:"thumbnail"`
}

// Project is a case study.
type Project struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Client       string   `json:"client"`
	Year         string   `json:"year"`
	Services     []string `json:"services"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	HeroImage    string   `json:"heroImage"`
	HeroVideoURL string   `json:"heroVideoUrl,omitempty"`
	Brief        string   `json:"brief"`
	Solution     string   `json:"solution,omitempty"`
	Results      string   `json:"results,omitempty"`
	ProjectURL   string   `json:"projectUrl,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Order        int      `json:"order,omitempty"`
	Content      []Block  `json:"content"`
	// RelatedSlugs is the stored reference list; RelatedProjects is filled
	// from it when the project is loaded by slug.
	RelatedSlugs    []string     `json:"relatedSlugs,omitempty"`
	RelatedProjects []ProjectRef `json:"relatedProjects,omitempty"`
}

// Ref returns the short form of p.
func (p Project) Ref() ProjectRef {
	return ProjectRef{Title: p.Title, Slug: p.Slug, Thumbnail: p.Thumbnail}
}
