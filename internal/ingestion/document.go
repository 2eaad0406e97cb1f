// Package ingestion extracts plain text from resume documents and job
// posting URLs so the analysis agents can work from clean input.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxDocumentBytes is the upload size limit for resume files (5MB).
const MaxDocumentBytes = 5 * 1024 * 1024

var (
	// ErrUnsupportedFormat is returned for file types other than PDF, DOCX, and plain text.
	ErrUnsupportedFormat = fmt.Errorf("unsupported document format")
	// ErrDocumentTooLarge is returned when an upload exceeds MaxDocumentBytes.
	ErrDocumentTooLarge = fmt.Errorf("document too large")
)

// ExtractDocumentText extracts plain text from an uploaded resume document.
// The format is chosen by file extension: .pdf, .docx, or .txt.
// The returned text is cleaned and whitespace-normalized.
func ExtractDocumentText(filename string, data []byte) (string, error) {
	if len(data) > MaxDocumentBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentBytes)
	}

	var text string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// IngestResumeFile reads a resume from disk, extracts its text, and returns
// the cleaned text with metadata.
func IngestResumeFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractDocumentText(path, data)
	if err != nil {
		return "", nil, err
	}

	metadata := NewMetadata(text, "")
	metadata.Source = SourceFromFilename(path)

	return text, metadata, nil
}

// SourceFromFilename maps a file name to its metadata source label ("pdf",
// "docx", "txt").
func SourceFromFilename(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// extractPDFText joins the plain text of every page in the PDF.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDocxText pulls the document body out of a DOCX archive and strips
// the WordprocessingML markup, keeping paragraph breaks as newlines.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}
