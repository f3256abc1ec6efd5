package outreach

import (
	"fmt"
	"strings"

	"github.com/aaron-seq/CareerAgent/internal/types"
)

// fallbackPlan builds a plan straight from the profile when model
// planning fails. The hooks are generic but every field downstream
// drafting reads is populated, so the pipeline keeps moving.
func fallbackPlan(profile *types.CVProfile, posting *types.JobPosting) *types.PersonalizationPlan {
	var anchor *types.Project
	if len(profile.Projects) > 0 {
		project := profile.Projects[0]
		anchor = &project
	}

	topSkills := profile.TopSkills(3)

	return &types.PersonalizationPlan{
		AnchorProject:      anchor,
		TechnicalHook:      fmt.Sprintf("Experience with %s", strings.Join(topSkills, ", ")),
		ImpactHook:         "Track record of delivering impactful solutions",
		CompanyHook:        fmt.Sprintf("Interested in %s role", posting.Title),
		SharedTechnologies: topSkills,
		RelevantMetrics:    make([]string, 0),
		Angle:              types.AngleTechnical,
	}
}
