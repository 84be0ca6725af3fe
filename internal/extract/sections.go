package extract

import (
	"regexp"
	"strings"

	"github.com/careerforge/resumeparse/resume"
)

// GeneralCategory labels skill lines that carry no category of their own.
const GeneralCategory = "General"

// Skills parses "Category: item, item" lines into skill groups. A line
// without a colon becomes its own unlabeled group.
func Skills(body []string) []resume.SkillGroup {
	var groups []resume.SkillGroup
	for _, line := range body {
		trimmed := stripBullet(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		category, items, ok := splitLabel(trimmed)
		if !ok {
			groups = append(groups, resume.SkillGroup{
				Category: GeneralCategory,
				Items:    splitList(trimmed),
			})
			continue
		}
		// splitLabel lowercases for routing; keep the source casing here.
		category = strings.TrimSpace(trimmed[:strings.Index(trimmed, ":")])
		groups = append(groups, resume.SkillGroup{
			Category: category,
			Items:    splitList(items),
		})
	}
	return groups
}

// Certifications flattens each line into one entry, bullets stripped.
func Certifications(body []string) []string {
	var certs []string
	for _, line := range body {
		trimmed := stripBullet(strings.TrimSpace(line))
		if trimmed != "" {
			certs = append(certs, trimmed)
		}
	}
	return certs
}

var languageParen = regexp.MustCompile(`^(.+?)\s*\((.+)\)\s*$`)

// Languages maps "Language (Proficiency)" or "Language: Proficiency"
// lines to name→proficiency. A line matching neither keeps the whole
// line as the name with an empty proficiency.
func Languages(body []string) map[string]string {
	langs := map[string]string{}
	put := func(name, prof string) {
		if name != "" {
			if _, dup := langs[name]; !dup {
				langs[name] = prof
			}
		}
	}
	for _, line := range body {
		trimmed := stripBullet(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		if m := languageParen.FindStringSubmatch(trimmed); m != nil {
			put(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
			continue
		}
		if _, prof, ok := splitLabel(trimmed); ok {
			name := strings.TrimSpace(trimmed[:strings.Index(trimmed, ":")])
			put(name, prof)
			continue
		}
		put(trimmed, "")
	}
	if len(langs) == 0 {
		return nil
	}
	return langs
}

// Summary joins the block's non-blank lines into one free-text field.
func Summary(body []string) string {
	var lines []string
	for _, line := range body {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

// splitList splits a comma-separated item list, trimming each item.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
