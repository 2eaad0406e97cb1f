package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_PreserveMarkdownStructure(t *testing.T) {
	input := "# Jane Doe\n## Experience\n- Built billing service\n* Led team of 4"
	result := CleanText(input)

	assert.Contains(t, result, "# Jane Doe")
	assert.Contains(t, result, "## Experience")
	assert.Contains(t, result, "- Built billing service")
	assert.Contains(t, result, "* Led team of 4")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Senior    Engineer    at    Acme"
	result := CleanText(input)

	assert.Equal(t, "Senior Engineer at Acme", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Summary\n\n\n\n\nSkills"
	result := CleanText(input)

	assert.NotContains(t, result, "\n\n\n")
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "Line 2\nLine 3")
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Resume   text   with   spaces\n\n\nand   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestCleanText_EmptyAndWhitespaceOnly(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Ingénieur logiciel 🚀 chez Société Générale"
	result := CleanText(input)

	assert.Contains(t, result, "Ingénieur")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "Société Générale")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented detail\n  - Nested bullet"
	result := CleanText(input)

	assert.Contains(t, result, "    Indented detail")
	assert.Contains(t, result, "  - Nested bullet")
}

func TestCleanText_HeadingsLoseIndentation(t *testing.T) {
	result := CleanText("   ## Education")
	assert.Equal(t, "## Education", result)
}
