// Package extract applies per-section-type rules to segment bodies,
// producing the typed sub-records of a résumé.
package extract

import (
	"regexp"
	"strings"

	"github.com/careerforge/resumeparse/internal/segment"
	"github.com/careerforge/resumeparse/resume"
)

// Kind is the recognized section type of a segment.
type Kind string

const (
	KindContact        Kind = "contact"
	KindSummary        Kind = "summary"
	KindSkills         Kind = "skills"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindProjects       Kind = "projects"
	KindCertifications Kind = "certifications"
	KindLanguages      Kind = "languages"
	KindUnknown        Kind = "unknown"
)

// Extraction is the typed result of running one segment through its rule.
// Exactly one field besides Kind is populated, matching Kind.
type Extraction struct {
	Kind           Kind
	Contact        *resume.ContactInfo
	Summary        string
	Skills         []resume.SkillGroup
	Entries        []resume.Entry
	Certifications []string
	Languages      map[string]string
}

// headerKinds maps normalized header keywords to section kinds. The set
// covers the common spellings seen in real résumés.
var headerKinds = map[string]Kind{
	"contact":              KindContact,
	"contact info":         KindContact,
	"contact information":  KindContact,
	segment.ImplicitHeader: KindContact,

	"summary":              KindSummary,
	"professional summary": KindSummary,
	"objective":            KindSummary,
	"about":                KindSummary,
	"about me":             KindSummary,
	"profile":              KindSummary,

	"skills":           KindSkills,
	"technical skills": KindSkills,
	"core skills":      KindSkills,

	"experience":              KindExperience,
	"work experience":         KindExperience,
	"professional experience": KindExperience,
	"employment":              KindExperience,
	"employment history":      KindExperience,
	"work history":            KindExperience,

	"education": KindEducation,

	"projects":          KindProjects,
	"personal projects": KindProjects,
	"selected projects": KindProjects,

	"certifications":          KindCertifications,
	"certificates":            KindCertifications,
	"licenses certifications": KindCertifications,
	"certifications licenses": KindCertifications,

	"languages": KindLanguages,
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Classify maps a segment header to its section kind. Matching is
// case-insensitive and ignores punctuation. Unmatched headers, including
// the UNSTRUCTURED degenerate header, are KindUnknown.
func Classify(header string) Kind {
	norm := strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(header), " "))
	if kind, ok := headerKinds[norm]; ok {
		return kind
	}
	return KindUnknown
}

// Section classifies a segment and applies the matching extraction rule.
// It never fails: unknown headers yield KindUnknown and the segment body
// is surfaced verbatim by the assembler instead.
func Section(seg resume.Segment) Extraction {
	kind := Classify(seg.Header)
	ext := Extraction{Kind: kind}
	switch kind {
	case KindContact:
		c := Contact(seg.Body)
		ext.Contact = &c
	case KindSummary:
		ext.Summary = Summary(seg.Body)
	case KindSkills:
		ext.Skills = Skills(seg.Body)
	case KindExperience, KindEducation, KindProjects:
		ext.Entries = Entries(seg.Body)
	case KindCertifications:
		ext.Certifications = Certifications(seg.Body)
	case KindLanguages:
		ext.Languages = Languages(seg.Body)
	}
	return ext
}

// stripBullet removes a leading bullet marker from a trimmed line.
func stripBullet(trimmed string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):])
		}
	}
	if trimmed == "-" || trimmed == "*" || trimmed == "•" {
		return ""
	}
	return trimmed
}
