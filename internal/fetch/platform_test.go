package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://lever.co/jobs/123", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://www.linkedin.com/jobs/view/123456", PlatformLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc123", PlatformIndeed},
		{"https://example.com/jobs", PlatformUnknown},
		{"https://careers.example.com/openings/42", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	greenhouse := PlatformContentSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, ".job__description.body")

	linkedin := PlatformContentSelectors(PlatformLinkedIn)
	assert.Contains(t, linkedin, ".description__text")

	indeed := PlatformContentSelectors(PlatformIndeed)
	assert.Contains(t, indeed, "#jobDescriptionText")

	// Unknown platform falls back to generic job posting selectors
	unknown := PlatformContentSelectors(PlatformUnknown)
	assert.Contains(t, unknown, ".job-description")
	assert.Contains(t, unknown, "main")
}

func TestPlatformNoiseSelectors(t *testing.T) {
	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".application--wrapper")
	assert.Contains(t, greenhouse, ".voluntary-self-id")

	lever := PlatformNoiseSelectors(PlatformLever)
	assert.Contains(t, lever, ".posting-apply")

	unknown := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, unknown, "form")
	assert.Contains(t, unknown, ".cookie-banner")
}
