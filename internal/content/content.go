// Package content loads the portfolio's static content: profile, sections,
// and the two gallery collections consumed by the preview controller.
//
// Content comes from a YAML file named by FOLIO_CONTENT, or from the
// embedded default when no file is configured.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"folio/internal/gallery"
)

// PathEnv is the env var naming a content file to load instead of the default.
const PathEnv = "FOLIO_CONTENT"

//go:embed default.yaml
var defaultYAML []byte

// Profile is the hero banner content.
type Profile struct {
	Name    string `yaml:"name" json:"name"`
	Role    string `yaml:"role" json:"role"`
	Tagline string `yaml:"tagline" json:"tagline"`
	Focus   string `yaml:"focus,omitempty" json:"focus,omitempty"`
}

// Entry is one education or work history row.
type Entry struct {
	Institution string   `yaml:"institution,omitempty" json:"institution,omitempty"`
	Company     string   `yaml:"company,omitempty" json:"company,omitempty"`
	Degree      string   `yaml:"degree,omitempty" json:"degree,omitempty"`
	Role        string   `yaml:"role,omitempty" json:"role,omitempty"`
	Period      string   `yaml:"period" json:"period"`
	Highlights  []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// Heading returns "<degree|role> · <institution|company>".
func (e Entry) Heading() string {
	title := e.Degree
	if title == "" {
		title = e.Role
	}
	org := e.Institution
	if org == "" {
		org = e.Company
	}
	switch {
	case title == "":
		return org
	case org == "":
		return title
	default:
		return title + " · " + org
	}
}

// Link is an external contact link.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Portfolio is the full read-only content set.
type Portfolio struct {
	Profile        Profile        `yaml:"profile" json:"profile"`
	About          string         `yaml:"about" json:"about"`
	Projects       []gallery.Item `yaml:"projects" json:"projects"`
	Certifications []gallery.Item `yaml:"certifications" json:"certifications"`
	Education      []Entry        `yaml:"education" json:"education"`
	Work           []Entry        `yaml:"work" json:"work"`
	Technologies   []string       `yaml:"technologies" json:"technologies"`
	Email          string         `yaml:"email" json:"email"`
	Links          []Link         `yaml:"links" json:"links"`
}

// Collection returns the gallery items for kind.
func (p *Portfolio) Collection(kind gallery.Kind) []gallery.Item {
	switch kind {
	case gallery.KindProject:
		return p.Projects
	case gallery.KindCertification:
		return p.Certifications
	default:
		return nil
	}
}

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultYAML)
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads the portfolio at path. An empty path falls back to
// FOLIO_CONTENT, then to the embedded default.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %q: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid content")

// Validate checks that every gallery item has an id and a title and that ids
// are unique within their collection.
func (p *Portfolio) Validate() error {
	var problems []string
	check := func(name string, items []gallery.Item) {
		seen := make(map[string]bool, len(items))
		for i, it := range items {
			if strings.TrimSpace(it.ID) == "" {
				problems = append(problems, fmt.Sprintf("%s[%d]: missing id", name, i))
			} else if seen[it.ID] {
				problems = append(problems, fmt.Sprintf("%s[%d]: duplicate id %q", name, i, it.ID))
			}
			seen[it.ID] = true
			if strings.TrimSpace(it.Title) == "" {
				problems = append(problems, fmt.Sprintf("%s[%d]: missing title", name, i))
			}
		}
	}
	check("projects", p.Projects)
	check("certifications", p.Certifications)
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
