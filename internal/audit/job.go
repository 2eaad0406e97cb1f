package audit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/career-copilot/internal/types"
)

var (
	genderedPronounPattern   = regexp.MustCompile(`(?i)\b(he|him|his)\b`)
	credentialPattern        = regexp.MustCompile(`\brequire[sd]?\s+.*\b(phd|master'?s|mba)\b`)
	experienceBarrierPattern = regexp.MustCompile(`\b(\d{1,2})\+?\s*years?\s+.*\brequired\b`)
)

var jobKeywords = []string{
	"role", "position", "responsibilities", "requirements", "qualifications",
	"experience", "skills", "duties", "job", "candidate", "team", "company",
	"salary", "benefits", "work", "hiring",
}

var ageTerms = []struct {
	term   string
	reason string
}{
	{"digital native", "May exclude older workers"},
	{"recent graduate", "Excludes experienced professionals"},
	{"young and energetic", "Direct age discrimination"},
	{"new grad", "Age-restrictive"},
}

var masculineCodedJobTerms = []string{
	"rockstar", "guru", "ninja", "wizard",
	"aggressive", "dominant", "competitive",
}

var inclusivePhrases = []string{
	"equal opportunity employer",
	"diverse",
	"inclusive",
	"all qualified applicants",
	"disability",
	"veteran",
	"accommodation",
}

// AuditJobDescription scores a job description for discriminatory language
// and unrealistic requirements. Scores below 65 mark the posting as
// discriminatory.
func AuditJobDescription(jobDesc string) *types.JobAudit {
	var issues, flags []string
	score := 70

	trimmed := strings.TrimSpace(jobDesc)
	lower := strings.ToLower(trimmed)

	if len(trimmed) < minMeaningfulChars {
		issues = append(issues, "Insufficient Content")
		flags = append(flags, "Job description too short - should provide detailed role information")
		score = 30
	}

	keywordCount := countContained(lower, jobKeywords)
	switch {
	case keywordCount == 0 && len(trimmed) > 10:
		issues = append(issues, "Invalid Content")
		flags = append(flags, "Content doesn't appear to be a job description - no job-related keywords found")
		score = 20
	case keywordCount < 3 && len(trimmed) > minMeaningfulChars:
		issues = append(issues, "Low Quality Content")
		flags = append(flags, "Job description lacks detail - should include responsibilities, requirements, etc.")
		score -= 20
	}
	if keywordCount >= 5 {
		score += 15
	}

	if genderedPronounPattern.MatchString(jobDesc) {
		issues = append(issues, "Gendered Pronouns")
		flags = append(flags, "Uses 'he/him' - use gender-neutral 'they/them' instead")
		score -= 10
	}

	for _, check := range ageTerms {
		if strings.Contains(lower, check.term) {
			issues = append(issues, "Age Discrimination")
			flags = append(flags, fmt.Sprintf("'%s' - %s", titleCase(check.term), check.reason))
			score -= 10
		}
	}

	for _, term := range masculineCodedJobTerms {
		if strings.Contains(lower, term) {
			issues = append(issues, "Gender-Coded Language")
			flags = append(flags, fmt.Sprintf("'%s' is masculine-coded - use neutral alternatives", titleCase(term)))
			score -= 5
		}
	}

	if credentialPattern.MatchString(lower) &&
		!strings.Contains(lower, "or equivalent") && !strings.Contains(lower, "preferred") {
		issues = append(issues, "Credential Inflation")
		flags = append(flags, "Strict degree requirement may exclude qualified candidates")
		score -= 8
	}

	if experienceBarrierPattern.MatchString(jobDesc) {
		issues = append(issues, "Experience Barrier")
		flags = append(flags, "Consider if all years are truly required or if skills matter more")
		score -= 5
	}

	inclusiveCount := countContained(lower, inclusivePhrases)
	score += inclusiveCount * 3

	return &types.JobAudit{
		Score:            clamp(score, 0, 100),
		Issues:           dedupe(issues),
		Flags:            flags,
		InclusiveSignals: inclusiveCount,
		IsDiscriminatory: score < 65,
	}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
