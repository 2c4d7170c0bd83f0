package ui

import "folio/internal/gallery"

// Section is one page of the portfolio.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionWork
	SectionCertifications
	SectionEducation
	SectionTech
	SectionContact
)

// AllSections is the tab order.
var AllSections = []Section{
	SectionHome,
	SectionAbout,
	SectionWork,
	SectionCertifications,
	SectionEducation,
	SectionTech,
	SectionContact,
}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionAbout:
		return "about"
	case SectionWork:
		return "work"
	case SectionCertifications:
		return "certifications"
	case SectionEducation:
		return "education"
	case SectionTech:
		return "tech"
	case SectionContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Heading is the section's title as shown above its body.
func (s Section) Heading() string {
	switch s {
	case SectionAbout:
		return "about me"
	case SectionWork:
		return "featured work"
	case SectionCertifications:
		return "certifications"
	case SectionEducation:
		return "education & experience"
	case SectionTech:
		return "technologies"
	case SectionContact:
		return "connect"
	default:
		return ""
	}
}

// GalleryKind returns the collection a section previews, or KindNone for
// sections without tiles.
func (s Section) GalleryKind() gallery.Kind {
	switch s {
	case SectionWork:
		return gallery.KindProject
	case SectionCertifications:
		return gallery.KindCertification
	default:
		return gallery.KindNone
	}
}
