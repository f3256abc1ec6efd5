package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJobRelated(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		url     string
		want    bool
	}{
		{
			name:  "keyword in title",
			title: "Senior Go Engineer Job at Acme",
			want:  true,
		},
		{
			name:    "keyword in snippet",
			title:   "Acme Corp",
			snippet: "We are hiring across all engineering teams.",
			want:    true,
		},
		{
			name:  "keyword in url",
			title: "Acme Corp",
			url:   "https://boards.greenhouse.io/acme/123",
			want:  true,
		},
		{
			name:  "case insensitive",
			title: "HIRING NOW: Platform Engineer",
			want:  true,
		},
		{
			name:  "linkedin jobs path",
			title: "Acme",
			url:   "https://www.linkedin.com/jobs/view/12345",
			want:  true,
		},
		{
			name:  "employment type keyword",
			title: "Acme Corp",
			snippet: "Full-time role based in Berlin.",
			want:  true,
		},
		{
			name:    "unrelated result",
			title:   "Acme quarterly earnings report",
			snippet: "Revenue grew 12% year over year.",
			url:     "https://news.example.com/acme-earnings",
			want:    false,
		},
		{
			name: "all empty",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJobRelated(tt.title, tt.snippet, tt.url))
		})
	}
}
