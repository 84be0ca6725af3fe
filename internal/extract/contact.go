package extract

import (
	"regexp"
	"strings"

	"github.com/careerforge/resumeparse/resume"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern   = regexp.MustCompile(`(?i)(?:https?://|www\.|github\.com/|linkedin\.com/|gitlab\.com/|bitbucket\.org/)[^\s|,;•]+`)
	// Candidate phone tokens: digit groups with optional ()+-. separators.
	// A match must still carry 7-15 digits to count as a phone number.
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s().-]{5,}\d`)
)

// Labels that route "Label: value" contact lines.
var (
	locationLabels = map[string]bool{"location": true, "address": true, "based in": true, "city": true}
	linkLabels     = map[string]bool{"website": true, "portfolio": true, "github": true, "linkedin": true, "blog": true}
	// Labels whose value is matched by a pattern above; once the value is
	// consumed the label itself carries no information.
	valueLabels = map[string]bool{"email": true, "e mail": true, "mail": true, "phone": true, "mobile": true, "tel": true, "cell": true}
)

// Contact scans a contact/header block for an email, a phone number and
// profile links. The first line that matches none of those becomes the
// name; labeled lines route by label; everything left over is kept in
// Notes rather than dropped.
func Contact(body []string) resume.ContactInfo {
	var info resume.ContactInfo
	seenLinks := map[string]bool{}

	addLink := func(link string) {
		link = strings.TrimRight(link, ".,;")
		if link != "" && !seenLinks[link] {
			seenLinks[link] = true
			info.ProfileLinks = append(info.ProfileLinks, link)
		}
	}

	for _, line := range body {
		trimmed := stripBullet(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		rest := trimmed

		if info.Email == "" {
			if m := emailPattern.FindString(rest); m != "" {
				info.Email = m
				rest = strings.Replace(rest, m, "", 1)
			}
		}
		for _, m := range urlPattern.FindAllString(rest, -1) {
			addLink(m)
			rest = strings.Replace(rest, m, "", 1)
		}
		if info.Phone == "" {
			if m := findPhone(rest); m != "" {
				info.Phone = m
				rest = strings.Replace(rest, m, "", 1)
			}
		}

		matchedToken := rest != trimmed
		rest = trimSeparators(rest)
		if rest == "" {
			continue
		}
		if matchedToken && isDanglingLabel(rest) {
			continue
		}

		if label, value, ok := splitLabel(rest); ok {
			switch {
			case locationLabels[label]:
				if info.Location == "" {
					info.Location = value
					continue
				}
			case linkLabels[label]:
				addLink(value)
				continue
			}
		}

		if info.Name == "" {
			info.Name = rest
			continue
		}
		info.Notes = append(info.Notes, rest)
	}
	return info
}

// findPhone returns the first phone-shaped token with a plausible digit
// count, or "".
func findPhone(s string) string {
	for _, m := range phonePattern.FindAllString(s, -1) {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// splitLabel splits "Label: value" on the first colon.
func splitLabel(s string) (label, value string, ok bool) {
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return "", "", false
	}
	label = strings.ToLower(strings.TrimSpace(s[:idx]))
	value = strings.TrimSpace(s[idx+1:])
	if label == "" || value == "" {
		return "", "", false
	}
	return label, value, true
}

// isDanglingLabel reports whether s is a bare field label ("Phone:") left
// behind after its value was matched out of the line.
func isDanglingLabel(s string) bool {
	s = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(s, ":")))
	return valueLabels[s] || linkLabels[s]
}

// trimSeparators strips the decorative glue left behind once matched
// tokens are removed from a contact line.
func trimSeparators(s string) string {
	return strings.Trim(strings.TrimSpace(s), "|•,;–— \t")
}
