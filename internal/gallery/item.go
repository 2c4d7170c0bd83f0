package gallery

import "fmt"

// Kind identifies which collection a preview selection points into.
type Kind int

const (
	KindNone Kind = iota
	KindProject
	KindCertification
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindProject:
		return "project"
	case KindCertification:
		return "certification"
	default:
		return "unknown"
	}
}

// ParseKind maps a collection name ("projects", "project", "certifications",
// "certification") to its Kind. Unknown names yield KindNone.
func ParseKind(s string) Kind {
	switch s {
	case "project", "projects":
		return KindProject
	case "certification", "certifications", "certs":
		return KindCertification
	default:
		return KindNone
	}
}

// Direction is the step applied by Navigate.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Item is one displayable gallery entry (a project or a certification).
// Images takes precedence over Image; see Resolve.
type Item struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	Images      []string `yaml:"images,omitempty" json:"images,omitempty"`
	Link        string   `yaml:"link,omitempty" json:"link,omitempty"`
}

// Resolve returns the item's displayable image sequence: the explicit list
// when non-empty, else a one-element list holding Image, else nil.
// Every consumer (open, navigate, counter, HTTP API) goes through here.
func Resolve(item Item) []string {
	if len(item.Images) > 0 {
		return item.Images
	}
	if item.Image != "" {
		return []string{item.Image}
	}
	return nil
}

// ResolveAt resolves items[i]. An out-of-range index yields nil.
func ResolveAt(items []Item, i int) []string {
	if i < 0 || i >= len(items) {
		return nil
	}
	return Resolve(items[i])
}
