package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-copilot/internal/types"
)

func TestParseQuestions(t *testing.T) {
	input := `Here are your questions:

1. Tell me about a time you led a project under pressure.
2. How do you handle conflicting priorities?
3) Describe your biggest technical mistake and what it taught you.
Some commentary the model added.
4. Short?
5. What would you change about your last team's release process?`

	questions := ParseQuestions(input)
	require.Len(t, questions, 4)
	assert.Equal(t, "Tell me about a time you led a project under pressure.", questions[0])
	assert.Equal(t, "Describe your biggest technical mistake and what it taught you.", questions[2])
	// "Short?" is dropped for being too brief, commentary lines for having
	// no leading number.
	assert.Equal(t, "What would you change about your last team's release process?", questions[3])
}

func TestParseQuestions_NoNumberedLines(t *testing.T) {
	assert.Empty(t, ParseQuestions("I cannot generate questions for this posting."))
}

func TestFallbackQuestions(t *testing.T) {
	for _, questionType := range []types.QuestionType{
		types.QuestionBehavioral,
		types.QuestionTechnical,
		types.QuestionSituational,
	} {
		questions := fallbackQuestions(questionType, 5)
		require.Len(t, questions, 5)

		bank := questionBanks[questionType]
		for _, q := range questions {
			assert.Contains(t, bank, q)
		}
	}
}

func TestFallbackQuestions_CountCappedAtBankSize(t *testing.T) {
	questions := fallbackQuestions(types.QuestionBehavioral, 50)
	assert.Len(t, questions, len(questionBanks[types.QuestionBehavioral]))
}

func TestFallbackQuestions_UnknownTypeUsesBehavioral(t *testing.T) {
	questions := fallbackQuestions(types.QuestionType("trivia"), 3)
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Contains(t, questionBanks[types.QuestionBehavioral], q)
	}
}

func TestPracticeTips(t *testing.T) {
	assert.Len(t, PracticeTips(types.QuestionTechnical), 5)
	assert.Equal(t, PracticeTips(types.QuestionBehavioral), PracticeTips(types.QuestionType("unknown")))
}
