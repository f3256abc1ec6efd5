package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidTemplate(t *testing.T) {
	template, err := Get("parsing.json", "parse-cv")
	require.NoError(t, err)
	assert.Contains(t, template, "Extract structured information")
	assert.Contains(t, template, "{{.CVText}}")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("parsing.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRender_SubstitutesVars(t *testing.T) {
	prompt := Render("parsing.json", "parse-job", map[string]string{
		"JobText": "We are hiring a Go engineer.",
		"JobURL":  "https://acme.com/jobs/42",
	})

	assert.Contains(t, prompt, "We are hiring a Go engineer.")
	assert.Contains(t, prompt, "https://acme.com/jobs/42")
	assert.NotContains(t, prompt, "{{.JobText}}")
	assert.NotContains(t, prompt, "{{.JobURL}}")
}

func TestRender_PanicsOnMissingTemplate(t *testing.T) {
	assert.Panics(t, func() {
		Render("nonexistent.json", "some-key", nil)
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "substitutes all vars",
			template: "Hello {{.Name}}, welcome to {{.Company}}!",
			vars:     map[string]string{"Name": "Alice", "Company": "Acme Corp"},
			want:     "Hello Alice, welcome to Acme Corp!",
		},
		{
			name:     "repeated placeholder",
			template: "{{.Name}} and {{.Name}} again",
			vars:     map[string]string{"Name": "Alice"},
			want:     "Alice and Alice again",
		},
		{
			name:     "no placeholders",
			template: "No placeholders here",
			vars:     map[string]string{"Key": "Value"},
			want:     "No placeholders here",
		},
		{
			name:     "missing var keeps placeholder",
			template: "Hello {{.Name}}",
			vars:     map[string]string{},
			want:     "Hello {{.Name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.vars))
		})
	}
}

func TestKeys(t *testing.T) {
	keys, err := Keys("parsing.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "parse-cv")
	assert.Contains(t, keys, "parse-job")
}

func TestGet_CachedResultStable(t *testing.T) {
	first, err := Get("outreach.json", "plan")
	require.NoError(t, err)

	second, err := Get("outreach.json", "plan")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
