package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

// jobURLPatterns are path fragments suggesting an individual job posting.
var jobURLPatterns = []string{
	"/job/", "/jobs/", "/career", "/apply", "/position",
	"/opening", "/vacancy", "/hiring", "/recruit",
}

// excludeURLPatterns are path fragments for blogs, news, advice pieces, and
// aggregated listing pages.
var excludeURLPatterns = []string{
	"/blog/", "/news/", "/article/", "/post/", "/story/",
	"/updates/", "/press/", "/media/", "/tips/", "/guide/", "/advice/",
	"/search/", "/browse/", "/directory/", "/list/",
}

// aggregatedTitlePhrases mark titles of multi-job listing pages, e.g.
// "Remote Jobs in Berlin".
var aggregatedTitlePhrases = []string{
	"jobs in", "job openings in", "positions in", "vacancies in",
	"jobs available", "job listings", "careers in",
	"remote jobs", "job search", "find jobs", "jobs at",
	"hiring for", "open positions", "employment opportunities",
	"fully remote", "best companies",
}

// jobContentIndicators are phrases that appear in the body of a single,
// individual posting.
var jobContentIndicators = []string{
	"apply now", "submit application", "job description",
	"requirements:", "responsibilities:", "qualifications:",
	"salary", "compensation", "benefits", "experience required",
	"apply for this job", "send resume", "submit cv",
	"job summary", "about the role", "what you will do",
}

// countedJobsTitlePattern matches count-style titles like "63 Software
// Engineering Jobs".
var countedJobsTitlePattern = regexp.MustCompile(`\d+\s+.*?\bjobs?\b`)

// IsJobPosting reports whether a search hit looks like an individual job
// posting rather than a blog post, news article, or aggregated listing page.
// A hit passes on either a job-like URL path or at least two content
// indicators in its title or body.
func IsJobPosting(url, title, text string) bool {
	urlLower := strings.ToLower(url)
	for _, pattern := range excludeURLPatterns {
		if strings.Contains(urlLower, pattern) {
			return false
		}
	}

	titleLower := strings.ToLower(title)
	if countedJobsTitlePattern.MatchString(titleLower) {
		return false
	}
	for _, phrase := range aggregatedTitlePhrases {
		if strings.Contains(titleLower, phrase) {
			return false
		}
	}

	textLower := strings.ToLower(text)
	indicatorCount := 0
	for _, indicator := range jobContentIndicators {
		if strings.Contains(textLower, indicator) || strings.Contains(titleLower, indicator) {
			indicatorCount++
		}
	}

	hasJobURL := false
	for _, pattern := range jobURLPatterns {
		if strings.Contains(urlLower, pattern) {
			hasJobURL = true
			break
		}
	}

	return hasJobURL || indicatorCount >= 2
}

// BuildQuery renders a search query that steers the provider toward actual
// postings for the requested role.
func BuildQuery(req types.SearchRequest) string {
	parts := []string{req.JobTitle, "job posting", "apply"}

	location := strings.ToLower(req.Location)
	if req.Location != "" && location != "any" && location != "remote" {
		parts = append(parts, fmt.Sprintf("in %s", req.Location))
	}

	if req.WorkStyle != "" && req.WorkStyle != "Any" {
		parts = append(parts, req.WorkStyle)
	}

	return strings.Join(parts, " ")
}
