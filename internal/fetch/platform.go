// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformIndeed     Platform = "indeed"
	PlatformUnknown    Platform = "unknown"
)

// platformHosts maps hostname fragments to platforms.
var platformHosts = map[string]Platform{
	"greenhouse.io":     PlatformGreenhouse,
	"lever.co":          PlatformLever,
	"workday.com":       PlatformWorkday,
	"myworkdayjobs.com": PlatformWorkday,
	"linkedin.com":      PlatformLinkedIn,
	"indeed.com":        PlatformIndeed,
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for fragment, platform := range platformHosts {
		if strings.Contains(host, fragment) {
			return platform
		}
	}
	return PlatformUnknown
}

// platformContent holds each board's content selectors in priority order.
var platformContent = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		".job-description__content",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".section-wrapper.page-full-width",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".WDXK",
		".gwt-HTML",
		".job-description",
	},
	PlatformLinkedIn: {
		".description__text",
		".show-more-less-html__markup",
		".jobs-description-content",
		"main",
	},
	PlatformIndeed: {
		"#jobDescriptionText",
		".jobsearch-JobComponent-description",
		".jobsearch-jobDescriptionText",
		"main",
	},
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// commonNoise matches elements no posting extraction wants: application
// forms, EEO boilerplate, share widgets, cookie banners.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// platformNoise holds board-specific additions to commonNoise.
var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		".voluntary-self-id-wrapper",
		"#usa_self_id_section",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".lever-application-form",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
		".WDAF",
	},
	PlatformLinkedIn: {
		".similar-jobs",
		".top-card-layout__cta-container",
		".sign-in-modal",
	},
	PlatformIndeed: {
		".jobsearch-OtherJobs",
		".icl-Card",
		"#applyButtonLinkContainer",
	},
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	return append(append([]string{}, commonNoise...), platformNoise[platform]...)
}
