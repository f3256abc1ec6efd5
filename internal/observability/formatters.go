// Package observability provides the process logger and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed CV profile.
func (p *Printer) PrintProfile(profile *types.CVProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Email))
	}
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		skills := strings.Join(profile.TopSkills(maxItemsToShow), ", ")
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Experiences) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experiences), 3)
		for i := 0; i < count; i++ {
			exp := profile.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.Title))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experiences) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experiences)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(profile.Projects), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Projects[i].Name))
		}
		if len(profile.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Projects)-3))
		}
	}

	p.printBox("PARSED CV PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPostings outputs the discovered job postings with relevance scores.
func (p *Printer) PrintPostings(postings []types.JobPosting) {
	if len(postings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d postings:\n\n", len(postings)))

	count := min(len(postings), maxItemsToShow)
	for i := 0; i < count; i++ {
		posting := postings[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, posting.Title))
		sb.WriteString(fmt.Sprintf("    %s", posting.Company))
		if posting.Location != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", posting.Location))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Relevance: %.2f\n", posting.RelevanceScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(postings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(postings)-maxItemsToShow))
	}

	p.printBox("JOB POSTINGS", sb.String())
}

// PrintContacts outputs discovered outreach contacts with confidence scores.
func (p *Printer) PrintContacts(contacts []types.ContactCandidate) {
	if len(contacts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d contacts:\n\n", len(contacts)))

	count := min(len(contacts), maxItemsToShow)
	for i := 0; i < count; i++ {
		contact := contacts[i]
		sb.WriteString(fmt.Sprintf("• %s", contact.Name))
		if contact.Role != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", contact.Role))
		}
		sb.WriteString("\n")
		if contact.Email != "" {
			sb.WriteString(fmt.Sprintf("  %s [%s]\n", contact.Email, contact.EmailConfidence))
		}
		sb.WriteString(fmt.Sprintf("  Confidence: %.2f\n", contact.ConfidenceScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(contacts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more contacts", len(contacts)-maxItemsToShow))
	}

	p.printBox("CONTACT CANDIDATES", sb.String())
}

// PrintPlan outputs the personalization plan seeding message generation.
func (p *Printer) PrintPlan(plan *types.PersonalizationPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Angle:  %s\n", plan.Angle))
	if plan.AnchorProject != nil {
		sb.WriteString(fmt.Sprintf("Anchor: %s\n", plan.AnchorProject.Name))
	}
	sb.WriteString("\n")

	if plan.TechnicalHook != "" {
		sb.WriteString(fmt.Sprintf("Technical: %s\n", plan.TechnicalHook))
	}
	if plan.ImpactHook != "" {
		sb.WriteString(fmt.Sprintf("Impact:    %s\n", plan.ImpactHook))
	}
	if plan.CompanyHook != "" {
		sb.WriteString(fmt.Sprintf("Company:   %s\n", plan.CompanyHook))
	}

	if len(plan.SharedTechnologies) > 0 {
		shared := strings.Join(plan.SharedTechnologies, ", ")
		sb.WriteString(fmt.Sprintf("\nShared tech: %s\n", shared))
	}

	p.printBox("PERSONALIZATION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEmailDraft outputs the drafted email with its word count.
func (p *Printer) PrintEmailDraft(draft *types.EmailDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Subject: %s\n", draft.Subject))
	sb.WriteString(fmt.Sprintf("Words:   %d\n\n", draft.WordCount))
	sb.WriteString(draft.Body)

	p.printBox("EMAIL DRAFT", sb.String())
}

// PrintWhatsAppDraft outputs the drafted WhatsApp message with its
// click-to-chat link.
func (p *Printer) PrintWhatsAppDraft(draft *types.WhatsAppDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chars: %d\n\n", draft.CharacterCount))
	sb.WriteString(draft.Message)
	if draft.ClickToChatURL != "" {
		sb.WriteString(fmt.Sprintf("\n\nLink: %s", draft.ClickToChatURL))
	}

	p.printBox("WHATSAPP DRAFT", sb.String())
}

// PrintQuality outputs the quality review verdict for a draft.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintQuality(check *types.QualityCheck) {
	if check == nil {
		return
	}

	if check.Passed && len(check.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ QUALITY CHECK PASSED (%.0f/100)", check.Score))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.0f/100", check.Score))
	if check.Passed {
		sb.WriteString(" (passed)")
	}
	sb.WriteString("\n")

	if len(check.Issues) > 0 {
		sb.WriteString(fmt.Sprintf("\nFound %d issues:\n", len(check.Issues)))
		for _, issue := range check.Issues {
			if len(issue) > 45 {
				issue = issue[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("⚠ %s\n", issue))
		}
	}

	p.printBox("QUALITY CHECK", strings.TrimSuffix(sb.String(), "\n"))
}
