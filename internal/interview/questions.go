// Package interview generates practice interview questions from a job
// description and scores candidate answers against it.
//
// Question generation runs at a high temperature so repeated sessions see
// different questions. When the provider fails or returns too few usable
// lines, a shuffled slice of a per-type question bank stands in.
package interview

import (
	"context"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/prompts"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxJobDescriptionChars limits the job description sent with a generation
// request to stay under token limits.
const maxJobDescriptionChars = 1500

// Coach generates interview questions and evaluates answers using an LLM.
type Coach struct {
	client llm.Client
}

// NewCoach creates a Coach backed by the given LLM client.
func NewCoach(client llm.Client) *Coach {
	return &Coach{client: client}
}

// GenerateQuestions produces count questions of the given type for the job
// description. An unknown type is treated as behavioral. Provider failure or
// an underfilled reply falls back to the built-in bank for that type.
func (c *Coach) GenerateQuestions(ctx context.Context, jobDescription string, questionType types.QuestionType, count int) []string {
	if !questionType.Valid() {
		questionType = types.QuestionBehavioral
	}
	if count <= 0 {
		count = 5
	}

	template := prompts.MustGet("interview.json", "generate-questions")
	prompt := prompts.Format(template, map[string]string{
		"Count":          strconv.Itoa(count),
		"Type":           string(questionType),
		"JobDescription": truncate(jobDescription, maxJobDescriptionChars),
	})

	response, err := c.client.GenerateWithTemperature(ctx, prompt, llm.TierStandard, llm.TemperatureCreative)
	if err != nil {
		log.Printf("[interview] question generation failed, using question bank: %v", err)
		return fallbackQuestions(questionType, count)
	}

	questions := ParseQuestions(response)
	if len(questions) < count {
		log.Printf("[interview] reply held %d of %d questions, using question bank", len(questions), count)
		return fallbackQuestions(questionType, count)
	}
	return questions[:count]
}

// ParseQuestions keeps lines that carry a digit within their first three
// characters, strips the numbering, and drops anything ten characters or
// shorter after cleanup.
func ParseQuestions(text string) []string {
	var questions []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !hasLeadingDigit(line) {
			continue
		}
		question := strings.TrimSpace(strings.TrimLeft(line, "0123456789.) "))
		if len(question) > 10 {
			questions = append(questions, question)
		}
	}

	return questions
}

// hasLeadingDigit reports whether any of the first three characters is a digit.
func hasLeadingDigit(s string) bool {
	limit := 3
	if len(s) < limit {
		limit = len(s)
	}
	for _, r := range s[:limit] {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// fallbackQuestions returns count questions from the bank for questionType,
// shuffled so repeated fallbacks still vary.
func fallbackQuestions(questionType types.QuestionType, count int) []string {
	bank, ok := questionBanks[questionType]
	if !ok {
		bank = questionBanks[types.QuestionBehavioral]
	}

	shuffled := make([]string, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

var questionBanks = map[types.QuestionType][]string{
	types.QuestionBehavioral: {
		"Tell me about a time when you faced a significant challenge at work. How did you handle it?",
		"Describe a situation where you had to work with a difficult team member.",
		"What's your greatest professional accomplishment and why?",
		"How do you prioritize tasks when you have multiple deadlines?",
		"Tell me about a time when you failed. What did you learn?",
		"Describe a situation where you had to adapt to significant changes at work.",
		"Give me an example of when you showed leadership without having formal authority.",
		"Tell me about a time you had to make a difficult decision with limited information.",
		"Describe a conflict you had with a colleague and how you resolved it.",
		"Share an example of when you went above and beyond what was expected of you.",
	},
	types.QuestionTechnical: {
		"Walk me through your approach to solving a complex technical problem.",
		"How would you optimize the performance of a slow application?",
		"Explain a technical concept you recently learned to someone non-technical.",
		"Describe your experience with version control and collaboration workflows.",
		"How do you ensure code quality in your projects?",
		"What's your approach to debugging when you encounter an error you've never seen before?",
		"Explain the trade-offs between different architectural patterns you've used.",
		"How do you stay updated with new technologies and best practices?",
		"Describe a time when you had to refactor legacy code.",
		"What testing strategies do you employ in your development process?",
	},
	types.QuestionSituational: {
		"If you joined a team with an ongoing project in crisis, what would be your first steps?",
		"How would you handle discovering a critical bug in production just before a major release?",
		"What would you do if you disagreed with your manager's technical decision?",
		"If you had two critical tasks with the same deadline, how would you prioritize?",
		"How would you approach learning a completely new technology stack for a project?",
		"What would you do if a team member consistently missed deadlines?",
		"How would you handle receiving harsh criticism on your work?",
		"If given an impossible deadline, how would you respond?",
		"What would you do if you noticed a colleague's code had security vulnerabilities?",
		"How would you balance technical debt with new feature development?",
	},
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
