package site

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
)

//go:embed content/site.yaml
var siteYAML []byte

// Copy is the static text of the site.
type Copy struct {
	Studio   Studio              `yaml:"studio"`
	Nav      []NavItem           `yaml:"nav"`
	Home     HomeCopy            `yaml:"home"`
	Pages    map[string]HeroCopy `yaml:"pages"`
	About    AboutCopy           `yaml:"about"`
	Services []ServiceCopy       `yaml:"services"`
	FAQ      []FAQEntry          `yaml:"faq"`
}

// Studio holds contact details shown in the header and footer.
type Studio struct {
	Name      string   `yaml:"name"`
	ShortName string   `yaml:"short_name"`
	Tagline   string   `yaml:"tagline"`
	Phone     string   `yaml:"phone"`
	Email     string   `yaml:"email"`
	Address   string   `yaml:"address"`
	KakaoID   string   `yaml:"kakao_id"`
	BlogURL   string   `yaml:"blog_url"`
	Hours     []string `yaml:"hours"`
	Copyright string   `yaml:"copyright"`
}

// HeroCopy is the title block at the top of a page.
// Description may carry <br /> line breaks.
type HeroCopy struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type HomeCopy struct {
	Headline string      `yaml:"headline"`
	Subline  string      `yaml:"subline"`
	CTALabel string      `yaml:"cta_label"`
	CTAHref  string      `yaml:"cta_href"`
	Slides   []HeroSlide `yaml:"slides"`
	Features []string    `yaml:"features"`
	Guide    string      `yaml:"guide"`
}

type HeroSlide struct {
	Title string `yaml:"title"`
	Image string `yaml:"image"`
}

type AboutCopy struct {
	Body       string      `yaml:"body"`
	Values     []Highlight `yaml:"values"`
	Facilities []string    `yaml:"facilities"`
}

// Highlight is a short titled card.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ServiceCopy describes one service line page.
type ServiceCopy struct {
	Slug                 string                `yaml:"slug"`
	ContentType          portfolio.ContentType `yaml:"content_type"`
	NavLabel             string                `yaml:"nav_label"`
	CardTitle            string                `yaml:"card_title"`
	Title                string                `yaml:"title"`
	Description          string                `yaml:"description"`
	IntroTitle           string                `yaml:"intro_title"`
	Intro                string                `yaml:"intro"`
	Quote                string                `yaml:"quote"`
	Image                string                `yaml:"image"`
	Highlights           []Highlight           `yaml:"highlights"`
	PortfolioTitle       string                `yaml:"portfolio_title"`
	PortfolioDescription string                `yaml:"portfolio_description"`
	MoreLabel            string                `yaml:"more_label"`
}

// Hero returns the page hero of the service.
func (s ServiceCopy) Hero() HeroCopy {
	return HeroCopy{Title: s.Title, Description: s.Description}
}

// FAQEntry is one question and answer.
type FAQEntry struct {
	Category string `yaml:"category"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// LoadCopy parses the embedded site copy.
func LoadCopy() (*Copy, error) {
	return ParseCopy(siteYAML)
}

// ParseCopy parses site copy and checks that every service line is described.
func ParseCopy(data []byte) (*Copy, error) {
	var c Copy
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse site copy: %w", err)
	}

	for _, s := range c.Services {
		if !s.ContentType.Valid() {
			return nil, fmt.Errorf("parse site copy: service %q has unknown content type %q", s.Slug, s.ContentType)
		}
	}
	for _, ct := range portfolio.ContentTypes {
		if _, ok := c.Service(ct.Slug()); !ok {
			return nil, fmt.Errorf("parse site copy: missing service %q", ct.Slug())
		}
	}
	return &c, nil
}

// Service returns the service copy for a URL slug.
func (c *Copy) Service(slug string) (ServiceCopy, bool) {
	for _, s := range c.Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return ServiceCopy{}, false
}

// Page returns the hero copy of a page key.
func (c *Copy) Page(key string) HeroCopy {
	return c.Pages[key]
}

// TelHref is the tel: link for the studio phone.
func (s Studio) TelHref() string {
	return "tel:" + strings.ReplaceAll(s.Phone, " ", "")
}
