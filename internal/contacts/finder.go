// Package contacts - finder.go runs the contact discovery loop.
package contacts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aaron-seq/CareerAgent/internal/llm"
	"github.com/aaron-seq/CareerAgent/internal/prompts"
	"github.com/aaron-seq/CareerAgent/internal/research"
	"github.com/aaron-seq/CareerAgent/internal/types"
)

// DefaultMaxContacts caps a discovery run when the caller does not.
const DefaultMaxContacts = 5

// queryLimit caps how many generated queries are actually searched.
const queryLimit = 3

// resultsPerQuery is the number of search hits examined per query.
const resultsPerQuery = 5

// queryTemperature for search query generation.
const queryTemperature = 0.3

// politenessDelay spaces out consecutive search queries.
const politenessDelay = 500 * time.Millisecond

// Finder discovers hiring contacts for a company and role.
type Finder struct {
	searcher research.Searcher
	gen      *llm.Generator
	log      *zap.Logger
	sleep    func(time.Duration)
}

// NewFinder creates a Finder around a searcher and a generator.
func NewFinder(searcher research.Searcher, gen *llm.Generator, log *zap.Logger) *Finder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Finder{
		searcher: searcher,
		gen:      gen,
		log:      log,
		sleep:    time.Sleep,
	}
}

// Find searches for people hiring at the company. Queries come from the
// model with a deterministic fallback; query failures are logged and
// skipped, so the worst outcome is an empty slice, never an error.
func (f *Finder) Find(ctx context.Context, company, jobTitle string, maxResults int) []types.ContactCandidate {
	if maxResults <= 0 {
		maxResults = DefaultMaxContacts
	}

	queries := f.searchQueries(ctx, company, jobTitle)
	if len(queries) > queryLimit {
		queries = queries[:queryLimit]
	}

	contacts := make([]types.ContactCandidate, 0, maxResults)
	seen := make(map[string]bool)

	for i, query := range queries {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			f.sleep(politenessDelay)
		}

		results, err := f.searcher.Search(ctx, query, resultsPerQuery)
		if err != nil {
			f.log.Warn("contact search query failed", zap.String("query", query), zap.Error(err))
			continue
		}

		for _, result := range results {
			contact := contactFromResult(result, company)
			if contact == nil || seen[contact.Name] {
				continue
			}
			contacts = append(contacts, *contact)
			seen[contact.Name] = true

			if len(contacts) >= maxResults {
				return contacts
			}
		}
	}

	return contacts
}

// searchQueries asks the model for search queries, falling back to fixed
// patterns when generation or parsing fails.
func (f *Finder) searchQueries(ctx context.Context, company, jobTitle string) []string {
	roleKeyword := ExtractRoleKeyword(jobTitle)

	prompt := prompts.Render("contacts.json", "search-queries", map[string]string{
		"CompanyName": company,
		"JobTitle":    jobTitle,
		"RoleKeyword": roleKeyword,
	})

	record, err := f.gen.GenerateJSON(ctx, prompt, llm.GenerateOptions{
		Tier:        llm.TierLite,
		Temperature: queryTemperature,
	})
	if err != nil {
		f.log.Debug("query generation failed, using default queries", zap.Error(err))
		return defaultQueries(company, roleKeyword)
	}

	queries := flattenQueries(record)
	if len(queries) == 0 {
		return defaultQueries(company, roleKeyword)
	}
	return queries
}

func defaultQueries(company, roleKeyword string) []string {
	return []string{
		fmt.Sprintf("%s hiring manager %s", company, roleKeyword),
		fmt.Sprintf("site:linkedin.com/in %s recruiter", company),
		fmt.Sprintf("%s engineering manager", company),
	}
}

// flattenQueries collects query strings out of the generated object. The
// expected shape is {"queries": [...]}, but models sometimes key each
// query separately or nest lists; values are flattened in key order so
// the selection stays deterministic.
func flattenQueries(record map[string]any) []string {
	if values, ok := record["queries"]; ok {
		return stringList(values)
	}

	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var queries []string
	for _, key := range keys {
		queries = append(queries, stringList(record[key])...)
	}
	return queries
}

func stringList(value any) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, stringList(item)...)
		}
		return out
	default:
		return nil
	}
}

// contactFromResult extracts a contact from one search hit. Results
// without a recognizable person name are discarded.
func contactFromResult(result research.Result, company string) *types.ContactCandidate {
	name := ExtractNameFromTitle(result.Title)
	if name == "" {
		return nil
	}

	email := ExtractEmail(result.Title + " " + result.Snippet)
	role := ExtractRole(result.Title, result.Snippet)

	linkedin := ""
	if strings.Contains(result.URL, "linkedin.com") {
		linkedin = result.URL
	}

	emailConfidence := types.EmailUnknown
	if email != "" {
		emailConfidence = types.EmailConfirmed
	}

	return &types.ContactCandidate{
		Name:            name,
		Role:            role,
		Email:           email,
		EmailConfidence: emailConfidence,
		LinkedIn:        linkedin,
		Source:          result.URL,
		ConfidenceScore: ConfidenceScore(email, linkedin, company, result.Snippet),
	}
}
