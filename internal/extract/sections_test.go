package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resumeparse/resume"
)

func TestSkills_CategorizedLine(t *testing.T) {
	groups := Skills([]string{"Programming Languages: Python, JavaScript, TypeScript"})
	require.Len(t, groups, 1)

	assert.Equal(t, "Programming Languages", groups[0].Category)
	assert.Equal(t, []string{"Python", "JavaScript", "TypeScript"}, groups[0].Items)
}

func TestSkills_ColonlessLineIsGeneral(t *testing.T) {
	groups := Skills([]string{"Kubernetes, Terraform"})
	require.Len(t, groups, 1)

	assert.Equal(t, GeneralCategory, groups[0].Category)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, groups[0].Items)
}

func TestSkills_BulletsAndBlanks(t *testing.T) {
	groups := Skills([]string{
		"- Databases: PostgreSQL, Redis",
		"",
		"* Cloud: AWS",
	})
	require.Len(t, groups, 2)

	assert.Equal(t, "Databases", groups[0].Category)
	assert.Equal(t, resume.SkillGroup{Category: "Cloud", Items: []string{"AWS"}}, groups[1])
}

func TestCertifications_FlatLines(t *testing.T) {
	certs := Certifications([]string{
		"- AWS Certified Solutions Architect",
		"CKA: Certified Kubernetes Administrator",
		"",
	})

	assert.Equal(t, []string{
		"AWS Certified Solutions Architect",
		"CKA: Certified Kubernetes Administrator",
	}, certs)
}

func TestLanguages_BothForms(t *testing.T) {
	langs := Languages([]string{
		"English (Native)",
		"Spanish: Professional",
		"- French (Basic)",
	})

	assert.Equal(t, map[string]string{
		"English": "Native",
		"Spanish": "Professional",
		"French":  "Basic",
	}, langs)
}

func TestLanguages_UnparseableLineKeptAsName(t *testing.T) {
	langs := Languages([]string{"Portuguese"})
	assert.Equal(t, map[string]string{"Portuguese": ""}, langs)
}

func TestSummary_JoinsNonBlankLines(t *testing.T) {
	got := Summary([]string{"", "Line one.", "", "Line two.", ""})
	assert.Equal(t, "Line one.\nLine two.", got)
}

func TestClassify_NormalizesHeaders(t *testing.T) {
	cases := map[string]Kind{
		"WORK EXPERIENCE":           KindExperience,
		"Experience:":               KindExperience,
		"Technical Skills":          KindSkills,
		"  Education  ":             KindEducation,
		"PROJECTS":                  KindProjects,
		"Licenses & Certifications": KindCertifications,
		"Contact Information":       KindContact,
		"header":                    KindContact,
		"Hobbies":                   KindUnknown,
		"UNSTRUCTURED":              KindUnknown,
	}
	for header, want := range cases {
		assert.Equal(t, want, Classify(header), "header %q", header)
	}
}
