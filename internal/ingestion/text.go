package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRunPattern  = regexp.MustCompile(`\s+`)
	blankRunsPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving document structure.
// Line endings are normalized to LF, runs of spaces collapse to one, and
// at most two consecutive blank lines survive. Markdown-style headings and
// bullets keep their markers and indentation.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankRunsPattern.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Headings lose their leading indentation, bullets keep it.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// Regular lines: collapse internal space runs, preserve indentation.
	indent := len(line) - len(trimmed)
	content := spaceRunPattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
