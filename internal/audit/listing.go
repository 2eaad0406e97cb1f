package audit

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxListingChars limits the posting text sent with an audit request.
const maxListingChars = 1500

var (
	scoreLinePattern = regexp.MustCompile(`SCORE:\s*(\d+)`)
	flagsLinePattern = regexp.MustCompile(`FLAGS:\s*(.+)`)
)

// Auditor runs per-listing bias audits during job search. With a nil client
// every audit uses the heuristic scorer.
type Auditor struct {
	client llm.Client
}

// NewAuditor creates an Auditor. client may be nil to disable model-backed
// audits entirely.
func NewAuditor(client llm.Client) *Auditor {
	return &Auditor{client: client}
}

// AuditListing audits one job posting for inclusive language. A model failure
// never fails the caller: the result is a neutral passing score of 70 with a
// flag naming why the audit was skipped.
func (a *Auditor) AuditListing(ctx context.Context, jobText string) *types.BiasAudit {
	if a.client == nil {
		return HeuristicAudit(jobText)
	}

	template := prompts.MustGet("audit.json", "audit-job")
	prompt := prompts.Format(template, map[string]string{
		"JobText": truncate(jobText, maxListingChars),
	})

	response, err := a.client.GenerateWithTemperature(ctx, prompt, llm.TierLite, llm.TemperatureAudit)
	if err != nil {
		log.Printf("[audit] listing audit failed: %v", err)
		return skippedAudit(err)
	}
	if strings.TrimSpace(response) == "" {
		return &types.BiasAudit{
			Score:    70,
			Flags:    []string{"Audit Skipped (Service Unavailable)"},
			IsBiased: false,
		}
	}

	return ParseListingAudit(response)
}

// ParseListingAudit reads the SCORE:/FLAGS: lines from a model reply. A
// missing score defaults to 75, out-of-range scores are clamped to 0-100,
// and a FLAGS value of "None" yields no flags.
func ParseListingAudit(text string) *types.BiasAudit {
	score := 75
	if m := scoreLinePattern.FindStringSubmatch(text); m != nil {
		score, _ = strconv.Atoi(m[1])
		score = clamp(score, 0, 100)
	}

	var flags []string
	if m := flagsLinePattern.FindStringSubmatch(text); m != nil {
		for _, flag := range strings.Split(m[1], ",") {
			flag = strings.TrimSpace(flag)
			if flag != "" && !strings.EqualFold(flag, "none") {
				flags = append(flags, flag)
			}
		}
	}

	return &types.BiasAudit{
		Score:    score,
		Flags:    flags,
		IsBiased: score < 70,
	}
}

// skippedAudit classifies a provider error into a user-facing skip reason.
func skippedAudit(err error) *types.BiasAudit {
	msg := err.Error()
	lower := strings.ToLower(msg)

	var reason string
	switch {
	case strings.Contains(lower, "quota"):
		reason = "Quota Exceeded"
	case strings.Contains(lower, "key"):
		reason = "Invalid API Key"
	default:
		reason = fmt.Sprintf("Error: %s", truncate(msg, 100))
	}

	return &types.BiasAudit{
		Score:    70,
		Flags:    []string{fmt.Sprintf("Audit Skipped (%s)", reason)},
		IsBiased: false,
	}
}

var (
	heuristicBiasWords = []string{
		"ninja", "rockstar", "guru", "dominant", "aggressive", "young", "energetic",
		"competitive", "ambitious", "assertive", "strong", "dynamic",
	}
	heuristicInclusiveWords = []string{
		"diverse", "inclusive", "equitable", "accessible", "flexible",
		"collaborative", "supportive", "balanced", "equal opportunity",
	}
)

// HeuristicAudit scores a posting without any model call: biased terms cost
// 8 points each, inclusive terms earn 4, overlong postings and shouty
// capitalization cost extra. The final score stays within 45-100 while the
// biased verdict uses the raw score.
func HeuristicAudit(jobText string) *types.BiasAudit {
	score := 75
	var flags []string

	lower := strings.ToLower(jobText)

	var foundBias []string
	for _, word := range heuristicBiasWords {
		if strings.Contains(lower, word) {
			foundBias = append(foundBias, word)
		}
	}
	if len(foundBias) > 0 {
		score -= len(foundBias) * 8
		shown := foundBias
		if len(shown) > 3 {
			shown = shown[:3]
		}
		flags = append(flags, fmt.Sprintf("Potentially biased terms: %s", strings.Join(shown, ", ")))
	}

	inclusiveCount := countContained(lower, heuristicInclusiveWords)
	if inclusiveCount > 0 {
		score += inclusiveCount * 4
		if score > 100 {
			score = 100
		}
	}

	if len(jobText) > 2000 {
		score -= 5
	}

	if capsRatio(jobText) > 0.15 {
		score -= 10
		flags = append(flags, "Excessive capitalization detected")
	}

	if len(flags) == 0 {
		flags = []string{"Basic audit completed (API unavailable)"}
	}

	return &types.BiasAudit{
		Score:    clamp(score, 45, 100),
		Flags:    flags,
		IsBiased: score < 70,
	}
}

// capsRatio is the share of uppercase characters in s.
func capsRatio(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	upper := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(len(s))
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
