package outreach

import (
	"fmt"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

// Prompt budgets. Planning prompts carry only the strongest evidence so
// the model cannot pad hooks with weak material.
const (
	maxPromptProjects         = 3
	maxProjectTechnologies    = 3
	maxPromptExperiences      = 2
	maxPromptAchievementLines = 5
)

// formatProjects renders the leading projects as bullet lines for the
// planning prompt.
func formatProjects(projects []types.Project) string {
	if len(projects) == 0 {
		return "No projects listed"
	}
	if len(projects) > maxPromptProjects {
		projects = projects[:maxPromptProjects]
	}

	lines := make([]string, 0, len(projects))
	for _, project := range projects {
		line := fmt.Sprintf("- %s: %s", project.Name, project.Description)
		if len(project.Technologies) > 0 {
			line += fmt.Sprintf(" (Tech: %s)", joinFirst(project.Technologies, maxProjectTechnologies, ", "))
		}
		if link := firstNonEmpty(project.Link, project.GitHub); link != "" {
			line += fmt.Sprintf(" [Link: %s]", link)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// formatAchievements renders achievements and metrics from the most
// recent roles as bullet lines.
func formatAchievements(experiences []types.Experience) string {
	if len(experiences) == 0 {
		return "No experience listed"
	}
	if len(experiences) > maxPromptExperiences {
		experiences = experiences[:maxPromptExperiences]
	}

	lines := make([]string, 0, maxPromptAchievementLines)
	for _, exp := range experiences {
		for _, achievement := range firstN(exp.Achievements, 2) {
			lines = append(lines, "- "+achievement)
		}
		for _, metric := range firstN(exp.Metrics, 2) {
			lines = append(lines, "- "+metric)
		}
	}
	if len(lines) > maxPromptAchievementLines {
		lines = lines[:maxPromptAchievementLines]
	}
	return strings.Join(lines, "\n")
}

// formatAnchorProject renders the anchor project reference for message
// prompts. Only the canonical link is shown here; the repository URL is
// planning material, not outreach material.
func formatAnchorProject(project *types.Project) string {
	if project == nil {
		return "No anchor project identified"
	}
	text := fmt.Sprintf("%s: %s", project.Name, project.Description)
	if project.Link != "" {
		text += fmt.Sprintf(" [Link: %s]", project.Link)
	}
	return text
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinFirst(items []string, n int, sep string) string {
	return strings.Join(firstN(items, n), sep)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
