package domain

import "strings"

// Section identifies one of the fixed named views composing the page.
// Exactly one Section is active at a time; SectionUnrecognized is the
// explicit branch for fragment names that match no view.
type Section int

const (
	SectionUnrecognized Section = iota
	SectionAbout
	SectionBlog
	SectionPublications
	SectionProjects
	SectionReadings
	SectionContact
)

// HomeSection is the view shown for an empty fragment.
const HomeSection = SectionAbout

// Sections returns every known section in page order.
func Sections() []Section {
	return []Section{
		SectionAbout,
		SectionBlog,
		SectionPublications,
		SectionProjects,
		SectionReadings,
		SectionContact,
	}
}

// ParseSection maps a view name to its Section.
// Names are matched exactly, the same way an element id is.
func ParseSection(name string) Section {
	switch name {
	case "about":
		return SectionAbout
	case "blog":
		return SectionBlog
	case "publications":
		return SectionPublications
	case "projects":
		return SectionProjects
	case "readings":
		return SectionReadings
	case "contact":
		return SectionContact
	default:
		return SectionUnrecognized
	}
}

// String returns the view name of the section.
func (s Section) String() string {
	switch s {
	case SectionAbout:
		return "about"
	case SectionBlog:
		return "blog"
	case SectionPublications:
		return "publications"
	case SectionProjects:
		return "projects"
	case SectionReadings:
		return "readings"
	case SectionContact:
		return "contact"
	default:
		return "unrecognized"
	}
}

// Known reports whether s names one of the fixed views.
func (s Section) Known() bool {
	return s != SectionUnrecognized
}

// Title returns the section name capitalised for display.
func (s Section) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
