package search

import (
	"context"
	"encoding/json"
	"log"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-copilot/internal/audit"
	"github.com/jonathan/career-copilot/internal/llm"
	"github.com/jonathan/career-copilot/internal/schemas"
	"github.com/jonathan/career-copilot/internal/types"
)

// maxDescriptionChars bounds the listing description shown to users.
const maxDescriptionChars = 500

// maxExtractionChars bounds the posting text sent per extraction request.
const maxExtractionChars = 1500

// processConcurrency bounds parallel per-listing enrichment.
const processConcurrency = 4

var (
	companyPattern = regexp.MustCompile(`(?:at|company|employer):\s*([A-Z][a-zA-Z\s&]{2,30})`)
	salaryPattern  = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:k|K)?)`)
)

// jobDetailsSchema validates the extraction output before it is trusted.
const jobDetailsSchema = `{
	"type": "object",
	"required": ["company", "summary"],
	"properties": {
		"company": {"type": "string", "minLength": 1},
		"location": {"type": "string"},
		"work_style": {"type": "string"},
		"salary": {"type": "string"},
		"summary": {"type": "string", "minLength": 1}
	}
}`

// Processor enriches raw search hits into displayable listings: structured
// details extracted from the posting text plus a per-listing bias audit.
type Processor struct {
	client  llm.Client
	auditor *audit.Auditor
}

// NewProcessor creates a Processor. client may be nil, in which case details
// come from regex fallbacks only.
func NewProcessor(client llm.Client, auditor *audit.Auditor) *Processor {
	return &Processor{client: client, auditor: auditor}
}

// ProcessJobs converts raw hits into listings. Jobs are processed
// concurrently with bounded parallelism and results keep the input order.
// Processing never fails a listing: extraction errors degrade to regex
// fallbacks and audit errors to a skipped-audit verdict.
func (p *Processor) ProcessJobs(ctx context.Context, rawJobs []types.RawJob) []types.JobListing {
	listings := make([]types.JobListing, len(rawJobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(processConcurrency)

	for i, raw := range rawJobs {
		g.Go(func() error {
			listings[i] = p.processJob(gctx, raw)
			return nil
		})
	}
	_ = g.Wait()

	return listings
}

// processJob enriches one raw hit.
func (p *Processor) processJob(ctx context.Context, raw types.RawJob) types.JobListing {
	text := raw.Text
	if text == "" {
		title := raw.Title
		if title == "" {
			title = "this company"
		}
		text = "Job at " + title + ". See job link for details."
	}

	title := raw.Title
	if title == "" {
		title = "Job Opening"
	}

	listing := types.JobListing{
		Title:       title,
		URL:         raw.URL,
		Location:    "See details",
		WorkStyle:   "Flexible",
		Description: truncate(text, maxDescriptionChars) + "...",
	}

	details := p.extractDetails(ctx, text)
	if details != nil {
		listing.Company = details.Company
		if details.Location != "" {
			listing.Location = details.Location
		}
		if details.WorkStyle != "" {
			listing.WorkStyle = details.WorkStyle
		}
		listing.Salary = details.Salary
	} else {
		listing.Company = extractCompany(text)
		listing.Salary = extractSalary(text)
	}
	if listing.Company == "" {
		listing.Company = "Unknown Company"
	}

	listing.Audit = *p.auditor.AuditListing(ctx, text)

	return listing
}

// extractDetails asks the model for structured posting details, validating
// the reply against the job details schema. Any failure returns nil so the
// caller can fall back to regex extraction.
func (p *Processor) extractDetails(ctx context.Context, text string) *types.JobDetails {
	if p.client == nil {
		return nil
	}

	prompt := llm.BuildExtractionPrompt(llm.JobDetailsSchema(), truncate(text, maxExtractionChars))
	response, err := p.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("[search] details extraction failed, using regex fallback: %v", err)
		return nil
	}

	if err := schemas.ValidateJSONString(jobDetailsSchema, response); err != nil {
		log.Printf("[search] extraction reply failed validation: %v", err)
		return nil
	}

	var details types.JobDetails
	if err := json.Unmarshal([]byte(response), &details); err != nil {
		log.Printf("[search] extraction reply not decodable: %v", err)
		return nil
	}
	return &details
}

// extractCompany pulls a company name from "at:/company:/employer:" phrasing.
func extractCompany(text string) string {
	if m := companyPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// extractSalary pulls the first dollar amount from the posting.
func extractSalary(text string) string {
	return salaryPattern.FindString(text)
}
