package types

// ResumeAudit is the bias/quality audit of a resume. Score is clamped to 0-100.
type ResumeAudit struct {
	Score            int      `json:"score"`
	BiasesFound      []string `json:"biases_found"`
	Suggestions      []string `json:"suggestions"`
	InclusiveSignals int      `json:"inclusive_signals"`
	IsBiased         bool     `json:"is_biased"`
}

// JobAudit is the bias/inclusivity audit of a job description.
// Score is clamped to 0-100; IsDiscriminatory is true below 65.
type JobAudit struct {
	Score            int      `json:"score"`
	Issues           []string `json:"issues"`
	Flags            []string `json:"flags"`
	InclusiveSignals int      `json:"inclusive_signals"`
	IsDiscriminatory bool     `json:"is_discriminatory"`
}

// BiasAudit is the lightweight per-listing audit attached to search results.
type BiasAudit struct {
	Score    int      `json:"score"`
	Flags    []string `json:"flags"`
	IsBiased bool     `json:"is_biased"`
}
