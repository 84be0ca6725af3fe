// Package assemble merges per-segment extractions into one résumé record.
package assemble

import (
	"slices"

	"github.com/careerforge/resumeparse/internal/extract"
	"github.com/careerforge/resumeparse/resume"
)

// Merge folds extractions into a Record in source order. Repeated sections
// of the same type concatenate; segments of unknown type are collected
// verbatim. Assembly cannot fail given well-formed extractor output.
func Merge(segments []resume.Segment, extractions []extract.Extraction) (*resume.Record, []resume.UnrecognizedSegment) {
	record := &resume.Record{}
	var unrecognized []resume.UnrecognizedSegment

	for i, ext := range extractions {
		switch ext.Kind {
		case extract.KindContact:
			mergeContact(&record.Contact, ext.Contact)
		case extract.KindSummary:
			if ext.Summary != "" {
				if record.Summary != "" {
					record.Summary += "\n\n"
				}
				record.Summary += ext.Summary
			}
		case extract.KindSkills:
			record.Skills = append(record.Skills, ext.Skills...)
		case extract.KindExperience:
			record.Experience = append(record.Experience, ext.Entries...)
		case extract.KindEducation:
			record.Education = append(record.Education, ext.Entries...)
		case extract.KindProjects:
			record.Projects = append(record.Projects, ext.Entries...)
		case extract.KindCertifications:
			record.Certifications = append(record.Certifications, ext.Certifications...)
		case extract.KindLanguages:
			mergeLanguages(record, ext.Languages)
		default:
			seg := segments[i]
			unrecognized = append(unrecognized, resume.UnrecognizedSegment{
				Header: seg.Header,
				Body:   seg.Body,
			})
		}
	}
	return record, unrecognized
}

// mergeContact fills empty scalar fields and appends links and notes,
// keeping the first-seen value for scalars.
func mergeContact(dst *resume.ContactInfo, src *resume.ContactInfo) {
	if src == nil {
		return
	}
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Phone == "" {
		dst.Phone = src.Phone
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	for _, link := range src.ProfileLinks {
		if !slices.Contains(dst.ProfileLinks, link) {
			dst.ProfileLinks = append(dst.ProfileLinks, link)
		}
	}
	dst.Notes = append(dst.Notes, src.Notes...)
}

// mergeLanguages keeps the first mapping seen for each language name.
func mergeLanguages(record *resume.Record, langs map[string]string) {
	if len(langs) == 0 {
		return
	}
	if record.Languages == nil {
		record.Languages = map[string]string{}
	}
	for name, prof := range langs {
		if _, dup := record.Languages[name]; !dup {
			record.Languages[name] = prof
		}
	}
}
