package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/career-copilot/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestJobPosting fetches a job posting URL, extracts the posting text, and
// returns it cleaned together with metadata. Platform detection picks
// board-specific selectors for extraction. If useBrowser is true, a headless
// browser renders the page when plain HTTP yields too little content.
func IngestJobPosting(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[ingestion] URL: %s (platform: %s)", urlStr, platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[ingestion] extracted %d chars over HTTP", len(textContent))
	}

	// SPA boards render the posting client-side; fall back to a headless
	// browser when the static HTML carries almost no text.
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[ingestion] browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
			if verbose {
				log.Printf("[ingestion] extracted %d chars via browser", len(textContent))
			}
		}
	}

	cleanedText := CleanText(textContent)

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Source = "url"
	metadata.Platform = string(platform)

	return cleanedText, metadata, nil
}
