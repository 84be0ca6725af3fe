// Package resume defines the structured record a parsed résumé maps onto.
package resume

import "strings"

// Segment is a contiguous run of source lines under one detected heading.
// HeaderLine and Separator keep the raw source lines (empty for implicit
// segments) so the original line sequence can be reconstructed exactly.
type Segment struct {
	Header     string   `json:"header"`
	HeaderLine string   `json:"-"`
	Separator  string   `json:"-"`
	Body       []string `json:"body"`
	OrderIndex int      `json:"order_index"`
}

// Lines returns the raw source lines this segment covers, in order.
func (s Segment) Lines() []string {
	var lines []string
	if s.HeaderLine != "" {
		lines = append(lines, s.HeaderLine)
	}
	if s.Separator != "" {
		lines = append(lines, s.Separator)
	}
	return append(lines, s.Body...)
}

// ContactInfo holds the identity block at the top of a résumé.
// Notes collects contact lines that matched no known pattern; they are
// retained verbatim rather than dropped.
type ContactInfo struct {
	Name         string   `json:"name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	ProfileLinks []string `json:"profile_links,omitempty"`
	Location     string   `json:"location,omitempty"`
	Notes        []string `json:"notes,omitempty"`
}

// DateRange is a start/end pair as written in the source text.
// An open-ended range keeps its literal end marker (e.g. "Present").
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Entry is one dated, titled record within experience, education or
// projects: one job, one degree, one project.
type Entry struct {
	Title        string    `json:"title"`
	Organization string    `json:"organization,omitempty"`
	Location     string    `json:"location,omitempty"`
	Dates        DateRange `json:"dates,omitzero"`
	BulletPoints []string  `json:"bullet_points,omitempty"`
}

// SkillGroup is a labeled category of skill items.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items,omitempty"`
}

// Record is the normalized result of parsing one résumé.
type Record struct {
	Contact        ContactInfo       `json:"contact,omitzero"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []SkillGroup      `json:"skills,omitempty"`
	Experience     []Entry           `json:"experience,omitempty"`
	Education      []Entry           `json:"education,omitempty"`
	Projects       []Entry           `json:"projects,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Languages      map[string]string `json:"languages,omitempty"`
}

// UnrecognizedSegment is a segment whose header matched no known section
// type, preserved verbatim so no input is silently lost.
type UnrecognizedSegment struct {
	Header string   `json:"header"`
	Body   []string `json:"body"`
}

// IsEmpty reports whether the record carries no extracted data at all.
func (r *Record) IsEmpty() bool {
	c := r.Contact
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Location == "" &&
		len(c.ProfileLinks) == 0 && len(c.Notes) == 0 &&
		strings.TrimSpace(r.Summary) == "" &&
		len(r.Skills) == 0 && len(r.Experience) == 0 && len(r.Education) == 0 &&
		len(r.Projects) == 0 && len(r.Certifications) == 0 && len(r.Languages) == 0
}
