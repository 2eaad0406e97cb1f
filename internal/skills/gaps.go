package skills

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

// stopWords are ignored when comparing skill names word-by-word.
var stopWords = map[string]bool{
	"and": true, "or": true, "the": true, "in": true, "with": true,
	"for": true, "to": true, "of": true, "a": true, "an": true,
}

var wordPattern = regexp.MustCompile(`\w+`)

// AnalyzeGaps compares resume skills against job requirements. Matching is
// case-insensitive: a job skill counts as matched if it is a substring of a
// resume skill (or vice versa) or if the two share at least half of their
// significant words. Unmatched job skills become gaps, with severity by
// category: technical gaps are critical, domain moderate, soft minor.
func AnalyzeGaps(resumeSkills, jobSkills *types.SkillSet) *types.GapAnalysis {
	if resumeSkills == nil {
		resumeSkills = &types.SkillSet{}
	}
	if jobSkills == nil {
		jobSkills = &types.SkillSet{}
	}

	analysis := &types.GapAnalysis{
		ResumeSkills: *resumeSkills,
		JobSkills:    *jobSkills,
	}

	for _, category := range types.Categories() {
		for _, jobSkill := range jobSkills.Get(category) {
			if matchesAny(jobSkill, resumeSkills.Get(category)) {
				analysis.Matched.Add(category, jobSkill)
				continue
			}

			switch category {
			case types.CategoryTechnical:
				analysis.Gaps.Critical = append(analysis.Gaps.Critical, jobSkill)
			case types.CategoryDomain:
				analysis.Gaps.Moderate = append(analysis.Gaps.Moderate, jobSkill)
			default:
				analysis.Gaps.Minor = append(analysis.Gaps.Minor, jobSkill)
			}
		}
	}

	totalRequired := jobSkills.Total()
	if totalRequired > 0 {
		pct := float64(analysis.Matched.Total()) / float64(totalRequired) * 100
		analysis.MatchPercentage = math.Round(pct*10) / 10
	}

	return analysis
}

// matchesAny reports whether jobSkill matches any of the candidate skills.
func matchesAny(jobSkill string, candidates []string) bool {
	jobLower := strings.ToLower(jobSkill)
	for _, candidate := range candidates {
		candLower := strings.ToLower(candidate)
		if strings.Contains(candLower, jobLower) || strings.Contains(jobLower, candLower) {
			return true
		}
		if similar(jobLower, candLower) {
			return true
		}
	}
	return false
}

// similar reports whether two lowercased skill names share at least 50% of
// their significant words.
func similar(a, b string) bool {
	wordsA := significantWords(a)
	wordsB := significantWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	shared := 0
	for w := range wordsA {
		if wordsB[w] {
			shared++
		}
	}

	larger := len(wordsA)
	if len(wordsB) > larger {
		larger = len(wordsB)
	}
	return float64(shared)/float64(larger) >= 0.5
}

func significantWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(s, -1) {
		if !stopWords[w] {
			words[w] = true
		}
	}
	return words
}
