// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobDetails")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JobDetailsSchema returns the extraction schema for raw job posting text.
// Used when enriching search hits into displayable listings.
func JobDetailsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobDetails",
		Description: `You are an expert job posting parser. Extract display metadata from a raw job posting.
Use "Unknown" for fields the text does not state. Do not guess salaries.`,
		Fields: []SchemaField{
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Hiring company name",
				Required:    true,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "City/country, or 'Remote'",
				Required:    false,
			},
			{
				Name:        "work_style",
				Type:        "\"string\"",
				Description: "Remote, Hybrid, or Onsite",
				Required:    false,
			},
			{
				Name:        "salary",
				Type:        "\"string\"",
				Description: "Stated salary or salary range, empty if absent",
				Required:    false,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "One sentence summary of the role",
				Required:    true,
			},
		},
	}
}
