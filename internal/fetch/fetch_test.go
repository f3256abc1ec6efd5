package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	t.Run("returns page HTML and status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><article>Staff Engineer, Payments</article></body></html>"))
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		require.NoError(t, err)
		assert.Equal(t, server.URL, result.URL)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Contains(t, result.HTML, "Staff Engineer, Payments")
	})

	t.Run("non-200 returns both result and error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		result, err := URL(context.Background(), server.URL, nil)
		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, http.StatusNotFound, result.StatusCode)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("rejects URL without scheme", func(t *testing.T) {
		_, err := URL(context.Background(), "example.com/careers", nil)
		require.Error(t, err)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	})
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept-Language")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"Accept-Language": "en-US"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "en-US", gotAccept)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 10*time.Second, opts.Timeout)
	assert.Contains(t, opts.UserAgent, "Mozilla/5.0")
}

func TestExtractMainText(t *testing.T) {
	tests := []struct {
		name        string
		html        string
		noise       []string
		contains    []string
		notContains []string
	}{
		{
			name: "prefers the job description block",
			html: `<html><body>
				<div class="posting-meta">Share this job</div>
				<div class="job-description"><h2>About the role</h2><p>Design Go services end to end.</p></div>
			</body></html>`,
			contains:    []string{"About the role", "Design Go services"},
			notContains: []string{"Share this job"},
		},
		{
			name: "strips navigation, scripts and footers",
			html: `<html><body>
				<nav>Site navigation</nav>
				<script>var tracking = true;</script>
				<style>.x { color: red }</style>
				<main><h1>Platform Engineer</h1><p>Own the deployment pipeline.</p></main>
				<footer>Legal footer</footer>
			</body></html>`,
			contains:    []string{"Platform Engineer", "deployment pipeline"},
			notContains: []string{"Site navigation", "tracking", "Legal footer"},
		},
		{
			name: "removes extra noise selectors inside the match",
			html: `<html><body><main>
				<p>Role description.</p>
				<form id="application-form"><input name="resume"/>Apply here</form>
				<div class="eeo-statement">Equal opportunity text.</div>
			</main></body></html>`,
			noise:       PlatformNoiseSelectors(PlatformUnknown),
			contains:    []string{"Role description"},
			notContains: []string{"Apply here", "Equal opportunity"},
		},
		{
			name:     "falls back to body when nothing matches",
			html:     `<html><body><span>Plain inline text only.</span></body></html>`,
			contains: []string{"Plain inline text only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractMainText(tt.html, JobPostingSelectors(), tt.noise...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, text, unwanted)
			}
		})
	}
}

func TestJobPostingSelectors(t *testing.T) {
	selectors := JobPostingSelectors()
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "#job-content")
	assert.Contains(t, selectors, "main")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  Senior Engineer  \n\n\n   Remote   \n"
	assert.Equal(t, "Senior Engineer\nRemote", cleanWhitespace(input))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.True(t, ShouldUseBrowser("Loading..."))
	assert.False(t, ShouldUseBrowser(strings.Repeat("Full job description text. ", 30)))
}
