// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobMatches outputs a human-readable summary of the job search result.
func (p *Printer) PrintJobMatches(result *types.SearchResult) {
	if result == nil || len(result.Jobs) == 0 {
		p.printBox("JOB MATCHES", "No matching jobs found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d jobs (status: %s)\n\n", result.Count, result.Status))

	count := min(len(result.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := result.Jobs[i]
		title := job.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    %s | %s | %s\n", job.Company, job.Location, job.WorkStyle))
		if job.Salary != "" {
			sb.WriteString(fmt.Sprintf("    Salary: %s\n", job.Salary))
		}
		sb.WriteString(fmt.Sprintf("    Fairness: %d/100", job.Audit.Score))
		if job.Audit.IsBiased {
			sb.WriteString(" ⚠")
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(result.Jobs)-maxItemsToShow))
	}

	p.printBox("JOB MATCHES", sb.String())
}

// PrintGapAnalysis outputs the skill gap comparison between resume and job.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %.0f%%\n\n", analysis.MatchPercentage))

	writeGaps := func(label string, gaps []string) {
		if len(gaps) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s:\n", label))
		count := min(len(gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gaps[i]))
		}
		if len(gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeGaps("Critical Gaps", analysis.Gaps.Critical)
	writeGaps("Moderate Gaps", analysis.Gaps.Moderate)
	writeGaps("Minor Gaps", analysis.Gaps.Minor)

	p.printBox("SKILL GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerPath outputs the predicted career trajectory.
func (p *Printer) PrintCareerPath(path *types.CareerPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From:        %s\n", path.CurrentRole))
	sb.WriteString(fmt.Sprintf("To:          %s\n", path.TargetRole))
	sb.WriteString(fmt.Sprintf("Feasibility: %d/10\n", path.FeasibilityScore))
	sb.WriteString(fmt.Sprintf("Timeline:    %d months\n", path.TimelineMonths))

	if len(path.Milestones) > 0 {
		sb.WriteString("\nMilestones:\n")
		count := min(len(path.Milestones), maxItemsToShow)
		for i := 0; i < count; i++ {
			milestone := path.Milestones[i]
			if len(milestone) > 50 {
				milestone = milestone[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, milestone))
		}
		if len(path.Milestones) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.Milestones)-maxItemsToShow))
		}
	}

	if len(path.Challenges) > 0 {
		sb.WriteString("\nChallenges:\n")
		count := min(len(path.Challenges), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", path.Challenges[i]))
		}
		if len(path.Challenges) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.Challenges)-3))
		}
	}

	p.printBox("CAREER PATH PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the scored feedback for one interview answer.
func (p *Printer) PrintEvaluation(eval *types.Evaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:       %d/10\n", eval.Score))
	sb.WriteString(fmt.Sprintf("Correctness: %s\n", eval.IsCorrect))

	if len(eval.Analysis.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range eval.Analysis.Strengths {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}

	if len(eval.Analysis.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		for _, s := range eval.Analysis.Improvements {
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("ANSWER EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeAudit outputs any bias signals found in a resume.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResumeAudit(audit *types.ResumeAudit) {
	if audit == nil {
		return
	}

	if len(audit.BiasesFound) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ NO BIAS SIGNALS (score %d/100)", audit.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n\n", audit.Score))

	for i, bias := range audit.BiasesFound {
		if len(bias) > 45 {
			bias = bias[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", bias))
		if i < len(audit.BiasesFound)-1 {
			sb.WriteString("\n")
		}
	}

	if len(audit.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(audit.Suggestions), 3)
		for i := 0; i < count; i++ {
			s := audit.Suggestions[i]
			if len(s) > 50 {
				s = s[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("RESUME BIAS AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}
