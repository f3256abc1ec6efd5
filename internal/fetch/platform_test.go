package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://www.linkedin.com/jobs/view/3791234567", PlatformLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc123", PlatformIndeed},
		{"https://www.glassdoor.com/job-listing/backend-engineer", PlatformGlassdoor},
		{"https://example.com/jobs", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors_Greenhouse(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformGreenhouse)
	assert.Contains(t, selectors, ".job__description.body")
	assert.Contains(t, selectors, ".job__description")
}

func TestPlatformContentSelectors_Indeed(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformIndeed)
	assert.Contains(t, selectors, "#jobDescriptionText")
}

func TestPlatformContentSelectors_Unknown(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	// Falls back to generic job posting selectors.
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors(t *testing.T) {
	common := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, "form")
	assert.Contains(t, common, "#application-form")

	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".application--wrapper")

	lever := PlatformNoiseSelectors(PlatformLever)
	assert.Contains(t, lever, ".posting-apply")
}

func TestExtractJobText_GreenhousePage(t *testing.T) {
	html := `
	<html>
		<body>
			<header>Company nav</header>
			<div class="job__description body">
				<h1>Staff Engineer</h1>
				<p>Own the data platform end to end.</p>
			</div>
			<div class="application--wrapper">First name Last name</div>
		</body>
	</html>`

	text, err := ExtractJobText(html, "https://boards.greenhouse.io/acme/jobs/42")
	require.NoError(t, err)
	assert.Contains(t, text, "Staff Engineer")
	assert.Contains(t, text, "data platform")
	assert.NotContains(t, text, "Company nav")
	assert.NotContains(t, text, "First name")
}

func TestExtractJobText_UnknownSite(t *testing.T) {
	html := `<html><body><article><p>Engineering role at a startup.</p></article></body></html>`

	text, err := ExtractJobText(html, "https://example.com/careers/1")
	require.NoError(t, err)
	assert.Contains(t, text, "Engineering role")
}
