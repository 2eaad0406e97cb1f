package interview

import "github.com/jonathan/career-copilot/internal/types"

// PracticeTips returns static preparation advice for a question type. Unknown
// types get the behavioral tips.
func PracticeTips(questionType types.QuestionType) []string {
	if tips, ok := practiceTips[questionType]; ok {
		return tips
	}
	return practiceTips[types.QuestionBehavioral]
}

var practiceTips = map[types.QuestionType][]string{
	types.QuestionBehavioral: {
		"Use the STAR method: Situation, Task, Action, Result",
		"Be specific with examples from your experience",
		"Quantify your impact with numbers when possible",
		"Keep answers concise (1-2 minutes)",
		"Focus on YOUR actions, not just the team's",
	},
	types.QuestionTechnical: {
		"Think out loud to show your problem-solving process",
		"Ask clarifying questions if needed",
		"Discuss trade-offs between different approaches",
		"Mention edge cases you'd consider",
		"Be honest if you don't know something",
	},
	types.QuestionSituational: {
		"Take a moment to think before answering",
		"Explain your reasoning step-by-step",
		"Consider company values in your response",
		"Show awareness of different perspectives",
		"Demonstrate leadership and initiative",
	},
}
