package extract

import (
	"regexp"
	"strings"

	"github.com/careerforge/resumeparse/internal/segment"
	"github.com/careerforge/resumeparse/resume"
)

const monthToken = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

// dateRangePattern matches "Month Year - Month Year", "Year - Year" and
// open-ended ranges such as "January 2021 - Present".
var dateRangePattern = regexp.MustCompile(
	`(?i)(` + monthToken + `\.?\s+\d{4}|\d{4})\s*[-–—]\s*(` + monthToken + `\.?\s+\d{4}|\d{4}|Present|Current|Now)`)

// Entries parses a dated-entry block (experience, education, projects).
//
// Grammar: a non-bullet line starts an Entry and is its title; the next
// non-bullet line, if any, is organization/location/date metadata; one
// further non-bullet line is consumed as metadata only when it is a
// standalone date range. Bullet lines append to the current entry. Lines
// that fit nowhere are kept verbatim as bullet points, never dropped.
func Entries(body []string) []resume.Entry {
	var entries []*resume.Entry
	var cur *resume.Entry
	metaSeen := 0
	bulletSeen := false

	start := func(title string) {
		cur = &resume.Entry{Title: title}
		entries = append(entries, cur)
		metaSeen = 0
		bulletSeen = false
	}

	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if segment.IsBullet(trimmed) {
			if cur == nil {
				// Stray bullets before any title: keep them on an
				// untitled entry.
				start("")
			}
			cur.BulletPoints = append(cur.BulletPoints, stripBullet(trimmed))
			bulletSeen = true
			continue
		}

		switch {
		case cur == nil || bulletSeen:
			start(trimmed)
		case metaSeen == 0:
			applyMeta(cur, trimmed)
			metaSeen = 1
		case metaSeen == 1 && isDateRangeLine(trimmed):
			if cur.Dates == (resume.DateRange{}) {
				applyMeta(cur, trimmed)
			} else {
				cur.BulletPoints = append(cur.BulletPoints, trimmed)
			}
			metaSeen = 2
		default:
			start(trimmed)
		}
	}

	out := make([]resume.Entry, len(entries))
	for i, e := range entries {
		out[i] = *e
	}
	return out
}

// applyMeta parses an organization/location/date metadata line into the
// entry. The last standalone date-range token sets Dates; the remainder
// splits on "|" into organization and location. A line that yields
// nothing new degrades into the bullet list.
func applyMeta(e *resume.Entry, line string) {
	rest := line
	matched := false

	if locs := dateRangePattern.FindAllStringSubmatchIndex(rest, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		if e.Dates == (resume.DateRange{}) {
			e.Dates = resume.DateRange{
				Start: rest[last[2]:last[3]],
				End:   rest[last[4]:last[5]],
			}
			rest = strings.TrimSpace(rest[:last[0]] + rest[last[1]:])
			matched = true
		}
	}

	rest = strings.Trim(rest, "|•–— \t")
	if rest != "" {
		org, loc := rest, ""
		if idx := strings.Index(rest, "|"); idx >= 0 {
			org = strings.TrimSpace(rest[:idx])
			loc = strings.TrimSpace(rest[idx+1:])
		}
		switch {
		case e.Organization == "":
			e.Organization = org
			if loc != "" && e.Location == "" {
				e.Location = loc
			}
			matched = true
		case e.Location == "" && loc == "":
			e.Location = org
			matched = true
		case loc != "" && e.Location == "":
			e.Location = loc
			matched = true
		}
	}

	if !matched && strings.TrimSpace(line) != "" {
		e.BulletPoints = append(e.BulletPoints, strings.TrimSpace(line))
	}
}

// isDateRangeLine reports whether the whole line is a date-range token,
// give or take surrounding punctuation.
func isDateRangeLine(trimmed string) bool {
	loc := dateRangePattern.FindStringIndex(trimmed)
	if loc == nil {
		return false
	}
	leftover := strings.Trim(trimmed[:loc[0]]+trimmed[loc[1]:], "|()[]•–—,. \t")
	return leftover == ""
}
