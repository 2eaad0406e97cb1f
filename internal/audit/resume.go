// Package audit checks resumes, job descriptions, and search results for
// biased or exclusionary language.
//
// The resume and job description audits are purely heuristic: scored keyword
// and pattern checks that run without any model call. The per-listing audit
// used by job search goes through the LLM when a client is available and
// falls back to a heuristic scorer when it is not.
package audit

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

// minMeaningfulChars is the length below which content is scored as
// insufficient rather than audited.
const minMeaningfulChars = 50

var (
	graduationYearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearsExperiencePattern    = regexp.MustCompile(`(?i)\b\d{2}\+?\s*years?\s+(?:of\s+)?experience\b`)
	seniorProfessionalPattern = regexp.MustCompile(`(?i)\bsenior\s+professional\b`)
	eliteInstitutionPattern   = regexp.MustCompile(`(?i)\b(ivy\s+league|top\s+tier|elite)\b`)
)

var resumeKeywords = []string{
	"experience", "skills", "education", "work", "project",
	"responsibilities", "achievements", "degree", "certificate",
	"position", "role", "company", "team",
}

var (
	masculineCodedWords = []string{"aggressive", "competitive", "dominant", "decisive", "assertive", "ambitious"}
	feminineCodedWords  = []string{"supportive", "collaborative", "nurturing", "understanding", "loyal"}
	inclusiveTerms      = []string{"diverse", "inclusive", "accessible", "equitable", "collaborative"}
)

// AuditResume scores a resume for bias signals and content quality. The score
// starts at 70 and moves with each finding; anything below 70 is flagged as
// biased.
func AuditResume(resumeText string) *types.ResumeAudit {
	var biases, suggestions []string
	score := 70

	trimmed := strings.TrimSpace(resumeText)
	lower := strings.ToLower(trimmed)

	if len(trimmed) < minMeaningfulChars {
		biases = append(biases, "Insufficient Content")
		suggestions = append(suggestions, "Resume too short - provide more details about your experience and skills")
		score = 30
	}

	keywordCount := countContained(lower, resumeKeywords)
	switch {
	case keywordCount == 0 && len(trimmed) > 10:
		biases = append(biases, "Invalid Content")
		suggestions = append(suggestions, "Content doesn't appear to be a resume - should include work experience, skills, education")
		score = 20
	case keywordCount < 3 && len(trimmed) > minMeaningfulChars:
		biases = append(biases, "Low Quality Resume")
		suggestions = append(suggestions, "Resume lacks detail - include clear sections for experience, skills, and education")
		score -= 15
	}
	if keywordCount >= 6 {
		score += 15
	}

	agePatterns := []struct {
		pattern    *regexp.Regexp
		suggestion string
	}{
		{graduationYearPattern, "Graduation year visible - consider removing to avoid age discrimination"},
		{yearsExperiencePattern, "Extensive years mentioned - consider 'significant experience' instead"},
		{seniorProfessionalPattern, "May indicate age - consider role-specific titles"},
	}
	for _, check := range agePatterns {
		if check.pattern.MatchString(resumeText) {
			biases = append(biases, "Age Indicator")
			suggestions = append(suggestions, check.suggestion)
			score -= 5
		}
	}

	if countContained(lower, masculineCodedWords) > 3 {
		biases = append(biases, "Gender-Coded Language (Masculine)")
		suggestions = append(suggestions, "Consider balancing masculine-coded words with neutral alternatives")
		score -= 5
	}
	if countContained(lower, feminineCodedWords) > 3 {
		biases = append(biases, "Gender-Coded Language (Feminine)")
		suggestions = append(suggestions, "Consider balancing feminine-coded words with neutral alternatives")
		score -= 5
	}

	if eliteInstitutionPattern.MatchString(resumeText) {
		biases = append(biases, "Elite Institution Emphasis")
		suggestions = append(suggestions, "While noting education is fine, excessive emphasis on 'elite' status may trigger bias")
		score -= 3
	}

	inclusiveCount := countContained(lower, inclusiveTerms)
	score += inclusiveCount * 2

	return &types.ResumeAudit{
		Score:            clamp(score, 0, 100),
		BiasesFound:      dedupe(biases),
		Suggestions:      suggestions,
		InclusiveSignals: inclusiveCount,
		IsBiased:         score < 70,
	}
}

// countContained counts how many of the terms occur in text.
func countContained(text string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			n++
		}
	}
	return n
}

// dedupe removes duplicate entries, keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// clamp bounds n to [lo, hi].
func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
