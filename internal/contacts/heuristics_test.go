package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNameFromTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "linkedin title",
			title: "Jane Doe - Engineering Manager | LinkedIn",
			want:  "Jane Doe",
		},
		{
			name:  "linkedin title without dash falls through",
			title: "Jane Doe | LinkedIn",
			want:  "Jane Doe",
		},
		{
			name:  "pipe without linkedin uses capitalized words",
			title: "Jane Doe - Recruiter | Indeed",
			want:  "Jane Doe",
		},
		{
			name:  "two capitalized words",
			title: "John Smith hiring for platform team",
			want:  "John Smith",
		},
		{
			name:  "lowercase title",
			title: "hiring update for engineers",
			want:  "",
		},
		{
			name:  "single word",
			title: "Jane",
			want:  "",
		},
		{
			name:  "second word lowercase",
			title: "Acme is hiring",
			want:  "",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNameFromTitle(tt.title))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain address",
			text: "reach out to jane.doe@acme.com for details",
			want: "jane.doe@acme.com",
		},
		{
			name: "first of several",
			text: "jane@acme.com or doe@acme.com",
			want: "jane@acme.com",
		},
		{
			name: "special characters",
			text: "ping j_d%x+1@sub.acme.co.uk today",
			want: "j_d%x+1@sub.acme.co.uk",
		},
		{
			name: "no address",
			text: "no contact info in this snippet",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractRole(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		want    string
	}{
		{
			name:  "keyword with context words",
			title: "Jane Doe - Engineering Manager at Acme",
			want:  "Engineering Manager at",
		},
		{
			name:  "keyword at end of title",
			title: "Senior Recruiter",
			want:  "Senior Recruiter",
		},
		{
			name:    "keyword only in snippet",
			title:   "Jane Doe profile",
			snippet: "She is a Director at Acme",
			want:    "Unknown Role",
		},
		{
			name:  "keyword at title start is skipped",
			title: "Manager of Platform",
			want:  "Unknown Role",
		},
		{
			name:  "case sensitive matching",
			title: "jane doe - engineering manager",
			want:  "Unknown Role",
		},
		{
			name:  "no keyword",
			title: "Jane Doe personal site",
			want:  "Unknown Role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRole(tt.title, tt.snippet))
		})
	}
}

func TestExtractRoleKeyword(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "engineer in title",
			title: "Senior Software Engineer",
			want:  "engineer",
		},
		{
			name:  "engineering contains engineer",
			title: "Engineering Manager",
			want:  "engineer",
		},
		{
			name:  "designer",
			title: "Staff Product Designer",
			want:  "designer",
		},
		{
			name:  "no keyword falls back to first word",
			title: "Head of Talent",
			want:  "Head",
		},
		{
			name:  "empty title",
			title: "",
			want:  "manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRoleKeyword(tt.title))
		})
	}
}

func TestConfidenceScore(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		linkedin string
		company  string
		snippet  string
		want     float64
	}{
		{
			name:    "base score",
			company: "Acme",
			snippet: "nothing relevant here",
			want:    0.3,
		},
		{
			name:    "email only",
			email:   "jane@acme.net",
			company: "Acme",
			snippet: "nothing relevant here",
			want:    0.7,
		},
		{
			name:     "email and linkedin",
			email:    "jane@acme.net",
			linkedin: "https://linkedin.com/in/jane",
			company:  "Acme",
			snippet:  "nothing relevant here",
			want:     0.9,
		},
		{
			name:     "everything",
			email:    "jane@acme.net",
			linkedin: "https://linkedin.com/in/jane",
			company:  "Acme",
			snippet:  "Jane works at Acme on hiring",
			want:     1.0,
		},
		{
			name:    "company match is case-insensitive",
			company: "ACME",
			snippet: "jane works at acme",
			want:    0.4,
		},
		{
			name:    "empty company matches any snippet",
			snippet: "anything",
			want:    0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceScore(tt.email, tt.linkedin, tt.company, tt.snippet)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
