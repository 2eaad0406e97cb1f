package types

// QuestionType identifies the kind of interview question to generate.
type QuestionType string

// Supported interview question types.
const (
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionTechnical   QuestionType = "technical"
	QuestionSituational QuestionType = "situational"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionBehavioral, QuestionTechnical, QuestionSituational:
		return true
	}
	return false
}

// Correctness classifies how an answer evaluation judged the response.
type Correctness string

// Correctness outcomes parsed from the evaluation reply.
const (
	CorrectnessCorrect   Correctness = "correct"
	CorrectnessPartial   Correctness = "partial"
	CorrectnessIncorrect Correctness = "incorrect"
	CorrectnessUnknown   Correctness = "unknown"
	CorrectnessError     Correctness = "error"
)

// AnswerAnalysis holds the bullet-level breakdown of an evaluation.
type AnswerAnalysis struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluation is the scored feedback for one interview answer.
// Score is always within 1-10; a failed evaluation carries score 5 and
// Correctness "error".
type Evaluation struct {
	Score        int            `json:"score"`
	Feedback     string         `json:"feedback"`
	IsCorrect    Correctness    `json:"is_correct"`
	BetterAnswer string         `json:"better_answer"`
	Analysis     AnswerAnalysis `json:"detailed_analysis"`
}

// InterviewRecord is one question/answer/score turn in a practice session.
type InterviewRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
}
