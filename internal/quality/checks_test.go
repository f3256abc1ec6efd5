package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMetric(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "percentage", text: "cut latency by 40%", want: true},
		{name: "magnitude suffix", text: "serving 10K requests", want: true},
		{name: "multiplier", text: "made deploys 3x faster", want: true},
		{name: "multiplier uppercase", text: "a 5X improvement", want: true},
		{name: "audience size", text: "used by 2000 customers", want: true},
		{name: "change verb with number", text: "reduced build times by 30", want: true},
		{name: "change verb without by", text: "scaled 5 services", want: true},
		{name: "no numbers", text: "we improved reliability a lot", want: false},
		{name: "bare number", text: "joined in 2019 as employee 4", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasMetric(tt.text))
		})
	}
}

func TestHasLink(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "https", text: "demo at https://example.com/demo", want: true},
		{name: "http", text: "see http://github.com/x/y for code", want: true},
		{name: "trailing punctuation absorbed", text: "at https://example.com.", want: true},
		{name: "bare domain", text: "see example.com for details", want: false},
		{name: "no link", text: "nothing to click here", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasLink(tt.text))
		})
	}
}

func TestHasCompanyHook(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		company  string
		jobTitle string
		want     bool
	}{
		{
			name:    "company named",
			body:    "I saw that Acme is rebuilding checkout.",
			company: "Acme",
			want:    true,
		},
		{
			name:    "company case insensitive",
			body:    "I saw that ACME is rebuilding checkout.",
			company: "acme",
			want:    true,
		},
		{
			name:     "title word echoed",
			body:     "Your backend team caught my eye.",
			company:  "",
			jobTitle: "Senior Backend Engineer",
			want:     true,
		},
		{
			name:     "short title words ignored",
			body:     "I lead an eng org today.",
			company:  "",
			jobTitle: "VP of Eng",
			want:     false,
		},
		{
			name:     "only first three title words count",
			body:     "Cloud infrastructure is my focus.",
			company:  "",
			jobTitle: "Lead Developer Advocate for Cloud",
			want:     false,
		},
		{
			name:     "no reference at all",
			body:     "I write software and like coffee.",
			company:  "Acme",
			jobTitle: "Senior Backend Engineer",
			want:     false,
		},
		{
			name:    "empty body",
			body:    "",
			company: "Acme",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasCompanyHook(tt.body, tt.company, tt.jobTitle))
		})
	}
}

func TestHasCTA(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "quick call", text: "worth a quick call?", want: true},
		{name: "availability", text: "I am available this week", want: true},
		{name: "discuss", text: "happy to discuss the details", want: true},
		{name: "timeboxed ask", text: "a 10-minute walkthrough", want: true},
		{name: "demo", text: "can show a demo", want: true},
		{name: "no ask", text: "looking forward to your reply", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasCTA(tt.text))
		})
	}
}

func TestHasEmoji(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "rocket", text: "shipped it 🚀", want: true},
		{name: "smiley", text: "great 😀", want: true},
		{name: "checkmark counts as emoji", text: "done ✓", want: true},
		{name: "plain ascii", text: "plain text only.", want: false},
		{name: "accented text", text: "café résumé", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasEmoji(tt.text))
		})
	}
}

func TestHasBullets(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "dash list", body: "- first point\n- second point", want: true},
		{name: "indented dash", body: "Intro line.\n  - detail", want: true},
		{name: "dot bullet", body: "• one thing", want: true},
		{name: "asterisk bullet", body: "* item", want: true},
		{name: "arrow bullet", body: "→ next step", want: true},
		{name: "hyphenated word", body: "a 10-minute call works", want: false},
		{name: "dash mid sentence", body: "numbers - like these - are fine", want: false},
		{name: "paragraphs", body: "First paragraph.\n\nSecond paragraph.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasBullets(tt.body))
		})
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, wordCount(""))
	assert.Equal(t, 0, wordCount("   \n  "))
	assert.Equal(t, 4, wordCount("one two  three\nfour"))
}
