package types

// SearchRequest configures a job search.
type SearchRequest struct {
	JobTitle  string `json:"job_title" validate:"required,min=2"`
	Location  string `json:"location,omitempty"`
	WorkStyle string `json:"work_style,omitempty"`
	NumJobs   int    `json:"num_jobs,omitempty" validate:"omitempty,min=1,max=20"`
}

// RawJob is an unprocessed search hit from the search provider.
type RawJob struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Text          string `json:"text"`
	PublishedDate string `json:"published_date,omitempty"`
}

// JobListing is a processed job posting ready for display: details extracted,
// description truncated, bias audit attached.
type JobListing struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	WorkStyle   string    `json:"work_style"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description"`
	Audit       BiasAudit `json:"audit"`
}

// SearchResult is the outcome of one job search. Context carries remembered
// exchanges relevant to the query, when memory is enabled.
type SearchResult struct {
	Jobs    []JobListing `json:"jobs"`
	Status  string       `json:"status"`
	Count   int          `json:"count"`
	Context string       `json:"context,omitempty"`
}

// JobDetails is the structured record extracted from raw posting text by the LLM.
type JobDetails struct {
	Company   string `json:"company"`
	Location  string `json:"location"`
	WorkStyle string `json:"work_style"`
	Salary    string `json:"salary"`
	Summary   string `json:"summary"`
}
