package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-copilot/internal/types"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		req  types.SearchRequest
		want string
	}{
		{
			"title only",
			types.SearchRequest{JobTitle: "Backend Engineer"},
			"Backend Engineer job posting apply",
		},
		{
			"with location",
			types.SearchRequest{JobTitle: "Backend Engineer", Location: "Berlin"},
			"Backend Engineer job posting apply in Berlin",
		},
		{
			"remote location omitted",
			types.SearchRequest{JobTitle: "Backend Engineer", Location: "Remote"},
			"Backend Engineer job posting apply",
		},
		{
			"any location omitted",
			types.SearchRequest{JobTitle: "Backend Engineer", Location: "any"},
			"Backend Engineer job posting apply",
		},
		{
			"work style appended",
			types.SearchRequest{JobTitle: "Backend Engineer", WorkStyle: "Hybrid"},
			"Backend Engineer job posting apply Hybrid",
		},
		{
			"any work style omitted",
			types.SearchRequest{JobTitle: "Backend Engineer", WorkStyle: "Any"},
			"Backend Engineer job posting apply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.req))
		})
	}
}

func TestIsJobPosting(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		text  string
		want  bool
	}{
		{
			"job url path",
			"https://acme.com/jobs/backend-engineer-1234",
			"Backend Engineer",
			"",
			true,
		},
		{
			"blog excluded",
			"https://acme.com/blog/how-to-hire",
			"Backend Engineer",
			"apply now salary benefits",
			false,
		},
		{
			"counted listing title excluded",
			"https://example.com/postings",
			"63 Software Engineering Jobs",
			"apply now salary",
			false,
		},
		{
			"aggregated phrase excluded",
			"https://example.com/postings",
			"Remote Jobs for Go developers",
			"apply now salary",
			false,
		},
		{
			"strong content indicators",
			"https://acme.com/p/backend",
			"Backend Engineer at Acme",
			"Responsibilities: build services. Apply now via our portal. Salary range listed.",
			true,
		},
		{
			"weak content, no job url",
			"https://example.com/p/thoughts",
			"Why I left engineering",
			"A reflective essay about careers and identity.",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJobPosting(tt.url, tt.title, tt.text))
		})
	}
}
