package interview

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxJobContextChars limits the job description attached to an evaluation.
const maxJobContextChars = 500

// EvaluateAnswer scores an interview answer against the question and job
// context. Provider failure yields a neutral score of five with Correctness
// set to error and the failure in the feedback text.
func (c *Coach) EvaluateAnswer(ctx context.Context, question, answer, jobDescription string) *types.Evaluation {
	template := prompts.MustGet("interview.json", "evaluate-answer")
	prompt := prompts.Format(template, map[string]string{
		"Question":   question,
		"Answer":     answer,
		"JobContext": truncate(jobDescription, maxJobContextChars),
	})

	response, err := c.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Printf("[interview] evaluation failed: %v", err)
		return &types.Evaluation{
			Score:     5,
			Feedback:  fmt.Sprintf("Error during evaluation: %v\n\nPlease try again or check your API key configuration.", err),
			IsCorrect: types.CorrectnessError,
			Analysis: types.AnswerAnalysis{
				Improvements: []string{"Unable to evaluate - technical error occurred"},
			},
		}
	}

	return ParseEvaluation(response)
}

// ParseEvaluation extracts the structured evaluation from a model reply. The
// full reply is preserved as feedback; the score defaults to five when no
// Score: line parses.
func ParseEvaluation(text string) *types.Evaluation {
	return &types.Evaluation{
		Score:        parseScore(text),
		Feedback:     text,
		IsCorrect:    parseCorrectness(text),
		BetterAnswer: parseBetterAnswer(text),
		Analysis:     ParseFeedback(text),
	}
}

// parseScore reads the digits from the first Score: line, clamped to 1-10.
// Missing or unparsable lines score five.
func parseScore(text string) int {
	line, ok := findLine(text, "Score:")
	if !ok {
		return 5
	}

	var digits strings.Builder
	for _, r := range line {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 5
	}

	score, err := strconv.Atoi(digits.String())
	if err != nil {
		return 5
	}
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// parseCorrectness classifies the Correctness: line. "incorrect" is checked
// before "correct" since the latter is a substring of the former.
func parseCorrectness(text string) types.Correctness {
	line, ok := findLine(text, "Correctness:")
	if !ok {
		return types.CorrectnessUnknown
	}

	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "incorrect"):
		return types.CorrectnessIncorrect
	case strings.Contains(lower, "partially"):
		return types.CorrectnessPartial
	case strings.Contains(lower, "correct"):
		return types.CorrectnessCorrect
	}
	return types.CorrectnessUnknown
}

// parseBetterAnswer collects the text from the Better Answer: line up to the
// STAR Method: section.
func parseBetterAnswer(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if strings.Contains(line, "Better Answer:") {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	var collected []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "STAR Method:") {
			break
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "Score:") || strings.HasPrefix(trimmed, "Correctness:") {
			continue
		}
		collected = append(collected, strings.TrimSpace(strings.ReplaceAll(line, "Better Answer:", "")))
	}
	return strings.TrimSpace(strings.Join(collected, "\n"))
}

// ParseFeedback pulls the bullet lists under the Strengths: and Improvements:
// headers, keeping at most three of each.
func ParseFeedback(text string) types.AnswerAnalysis {
	var analysis types.AnswerAnalysis

	section := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "Strengths:"):
			section = "strengths"
		case strings.Contains(line, "Improvements:") || strings.Contains(line, "Areas for Improvement"):
			section = "improvements"
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			item := strings.TrimSpace(strings.TrimLeft(line, "-•"))
			if item == "" {
				continue
			}
			switch section {
			case "strengths":
				analysis.Strengths = append(analysis.Strengths, item)
			case "improvements":
				analysis.Improvements = append(analysis.Improvements, item)
			}
		}
	}

	if len(analysis.Strengths) > 3 {
		analysis.Strengths = analysis.Strengths[:3]
	}
	if len(analysis.Improvements) > 3 {
		analysis.Improvements = analysis.Improvements[:3]
	}
	return analysis
}

// findLine returns the first line containing marker.
func findLine(text, marker string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, marker) {
			return line, true
		}
	}
	return "", false
}
