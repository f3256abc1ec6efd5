// Package jobs discovers job postings through web search and enriches them
// by fetching and parsing the posting page.
package jobs

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aaron-seq/CareerAgent/internal/fetch"
	"github.com/aaron-seq/CareerAgent/internal/llm"
	"github.com/aaron-seq/CareerAgent/internal/prompts"
	"github.com/aaron-seq/CareerAgent/internal/records"
	"github.com/aaron-seq/CareerAgent/internal/research"
	"github.com/aaron-seq/CareerAgent/internal/types"
)

// DefaultRelevance is the relevance score assigned to raw search results.
// Enrichment may replace it with a model-scored value.
const DefaultRelevance = 0.5

// detailsTemperature keeps posting extraction near-deterministic.
const detailsTemperature = 0.2

// maxDetailChars caps the page text sent to the model.
const maxDetailChars = 5000

// maxDescriptionChars caps the description stored on the posting.
const maxDescriptionChars = 1000

// detailsConcurrency bounds parallel page fetches during bulk enrichment.
const detailsConcurrency = 4

// renderFunc renders a page with a headless browser and returns its HTML.
type renderFunc func(ctx context.Context, url string) (string, error)

// Finder searches the web for job postings.
type Finder struct {
	searcher research.Searcher
	gen      *llm.Generator
	log      *zap.Logger

	fetchOptions *fetch.Options
	useBrowser   bool
	render       renderFunc
}

// FinderOption customizes a Finder.
type FinderOption func(*Finder)

// WithBrowserFallback enables headless browser rendering for pages whose
// plain HTTP fetch yields too little text.
func WithBrowserFallback(enabled bool) FinderOption {
	return func(f *Finder) {
		f.useBrowser = enabled
	}
}

// WithFetchOptions overrides the HTTP fetch options.
func WithFetchOptions(opts *fetch.Options) FinderOption {
	return func(f *Finder) {
		if opts != nil {
			f.fetchOptions = opts
		}
	}
}

// NewFinder creates a Finder around a searcher and a generator.
func NewFinder(searcher research.Searcher, gen *llm.Generator, log *zap.Logger, opts ...FinderOption) *Finder {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Finder{
		searcher:     searcher,
		gen:          gen,
		log:          log,
		fetchOptions: fetch.DefaultOptions(),
		render: func(ctx context.Context, url string) (string, error) {
			return fetch.BrowserSimple(ctx, url, false)
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Search runs a web search for the query and returns the results that look
// like job postings. Postings built here carry only search-level data; use
// Details to enrich one from its page.
func (f *Finder) Search(ctx context.Context, query types.SearchQuery) ([]types.JobPosting, error) {
	searchQuery := buildSearchQuery(query)
	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultSearchQuery(query.Query).MaxResults
	}

	f.log.Debug("searching for jobs",
		zap.String("query", searchQuery),
		zap.Int("max_results", maxResults),
	)

	results, err := f.searcher.Search(ctx, searchQuery, maxResults)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}

	postings := make([]types.JobPosting, 0, len(results))
	for _, result := range results {
		if !research.IsJobRelated(result.Title, result.Snippet, result.URL) {
			f.log.Debug("skipping non-job result", zap.String("url", result.URL))
			continue
		}
		postings = append(postings, searchPosting(result))
	}

	f.log.Debug("job search finished",
		zap.Int("results", len(results)),
		zap.Int("postings", len(postings)),
	)

	return postings, nil
}

// Details fetches a posting page and extracts the full structured posting.
// The URL and the page-derived description always win over model output.
func (f *Finder) Details(ctx context.Context, jobURL string) (*types.JobPosting, error) {
	text, err := f.pageText(ctx, jobURL)
	if err != nil {
		return nil, err
	}

	if runes := []rune(text); len(runes) > maxDetailChars {
		text = string(runes[:maxDetailChars])
	}

	prompt := prompts.Render("parsing.json", "parse-job", map[string]string{
		"JobText": text,
		"JobURL":  jobURL,
	})

	record, err := f.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierStandard,
		Temperature: detailsTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse job posting at %s: %w", jobURL, err)
	}

	record["url"] = jobURL
	record["description"] = firstRunes(text, maxDescriptionChars)

	return records.JobPostingFromMap(record)
}

// DetailsAll enriches postings concurrently, keeping the search-level
// posting wherever enrichment fails.
func (f *Finder) DetailsAll(ctx context.Context, postings []types.JobPosting) []types.JobPosting {
	enriched := make([]types.JobPosting, len(postings))
	copy(enriched, postings)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailsConcurrency)

	for i := range enriched {
		if enriched[i].URL == "" {
			continue
		}
		i := i // per-iteration copy: required under go <1.22 loop semantics
		g.Go(func() error {
			detailed, err := f.Details(ctx, enriched[i].URL)
			if err != nil {
				f.log.Warn("job enrichment failed",
					zap.String("url", enriched[i].URL),
					zap.Error(err),
				)
				return nil
			}
			enriched[i] = *detailed
			return nil
		})
	}

	//nolint:errcheck // workers never return errors; failures keep the original posting
	_ = g.Wait()
	return enriched
}

// pageText fetches the posting page and reduces it to text, falling back to
// browser rendering when the plain fetch yields a near-empty SPA shell.
func (f *Finder) pageText(ctx context.Context, jobURL string) (string, error) {
	result, err := fetch.URL(ctx, jobURL, f.fetchOptions)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractJobText(result.HTML, jobURL)
	if err != nil {
		return "", err
	}

	if f.useBrowser && fetch.ShouldUseBrowser(text) {
		f.log.Debug("page text too short, rendering with browser",
			zap.String("url", jobURL),
			zap.Int("chars", len(text)),
		)
		html, renderErr := f.render(ctx, jobURL)
		if renderErr != nil {
			f.log.Warn("browser rendering failed", zap.String("url", jobURL), zap.Error(renderErr))
			return text, nil
		}
		if rendered, extractErr := fetch.ExtractJobText(html, jobURL); extractErr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	return text, nil
}

// searchPosting maps a raw search result onto a posting shell.
func searchPosting(result research.Result) types.JobPosting {
	return types.JobPosting{
		Title:          result.Title,
		Company:        extractCompanyName(result.Title, result.URL),
		URL:            result.URL,
		Description:    result.Snippet,
		Requirements:   make([]string, 0),
		NiceToHave:     make([]string, 0),
		TechStack:      make([]string, 0),
		Problems:       make([]string, 0),
		Benefits:       make([]string, 0),
		RelevanceScore: DefaultRelevance,
	}
}

// buildSearchQuery assembles the web query from the structured request.
func buildSearchQuery(query types.SearchQuery) string {
	parts := []string{query.Query}

	if query.Location != "" {
		parts = append(parts, query.Location)
	}
	if query.Remote {
		parts = append(parts, "remote")
	}

	parts = append(parts, "job OR careers OR hiring")

	return strings.Join(parts, " ")
}

// extractCompanyName guesses the company from "<role> at <company>" titles,
// then from the URL host with common board prefixes stripped.
func extractCompanyName(title, urlStr string) string {
	if strings.Contains(title, " at ") {
		parts := strings.Split(title, " at ")
		if len(parts) > 1 {
			return strings.TrimSpace(parts[len(parts)-1])
		}
	}

	if parsed, err := url.Parse(urlStr); err == nil && parsed.Host != "" {
		domain := parsed.Host
		domain = strings.ReplaceAll(domain, "www.", "")
		domain = strings.ReplaceAll(domain, "jobs.", "")
		domain = strings.ReplaceAll(domain, "careers.", "")
		if segment := strings.Split(domain, ".")[0]; segment != "" {
			return capitalize(segment)
		}
	}

	return "Unknown Company"
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// firstRunes returns at most n runes of s.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
