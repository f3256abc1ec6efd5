// Package research provides web search for job postings and hiring contacts.
package research

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Result is a single web search hit.
type Result struct {
	Title   string
	Snippet string
	URL     string
}

// Searcher runs a web search and returns up to maxResults hits.
// Implementations may return fewer results than requested.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// GoogleSearcher implements Searcher on the Google Custom Search API.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a searcher backed by a Programmable Search Engine.
func NewGoogleSearcher(ctx context.Context, apiKey, cx string) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{
		svc: svc,
		cx:  cx,
	}, nil
}

// Search runs the query, paging through results in blocks of up to 10.
// The API caps a single page at 10 items and pagination at 100.
func (g *GoogleSearcher) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	var results []Result
	start := int64(1)

	for len(results) < maxResults && start <= 91 {
		num := maxResults - len(results)
		if num > 10 {
			num = 10
		}

		resp, err := g.svc.Cse.List().Cx(g.cx).Q(query).Num(int64(num)).Start(start).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
		if len(resp.Items) == 0 {
			break
		}

		for _, item := range resp.Items {
			results = append(results, Result{
				Title:   item.Title,
				Snippet: item.Snippet,
				URL:     item.Link,
			})
			if len(results) >= maxResults {
				break
			}
		}

		if len(resp.Items) < num {
			break
		}
		start += int64(len(resp.Items))
	}

	return results, nil
}
