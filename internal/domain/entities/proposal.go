package entities

import (
	"fmt"
	"strings"
)

// Proposal is the title/body/diff triple handed to the change-proposal mechanism.
type Proposal struct {
	Count int
	Title string
	Body  string
	Diff  string
}

// NewProposal composes the proposal for a run that updated packages.
func NewProposal(changelog Changelog, diff []string, updated []UpdatedPackage) Proposal {
	diffText := strings.Join(diff, "\n")
	return Proposal{
		Count: changelog.Count,
		Title: proposalTitle(changelog.Count),
		Body:  proposalBody(changelog, diffText, updated),
		Diff:  diffText,
	}
}

func proposalTitle(count int) string {
	noun := "packages"
	if count == 1 {
		noun = "package"
	}
	return fmt.Sprintf("chore(deps): updated %d Python %s", count, noun)
}

func proposalBody(changelog Changelog, diffText string, updated []UpdatedPackage) string {
	var sb strings.Builder
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "This PR updates %d dependency constraints to the latest available versions.\n\n", changelog.Count)

	sb.WriteString("### Changes\n\n")
	for _, entry := range changelog.Entries {
		sb.WriteString("- " + entry + "\n")
	}

	var majors []string
	for _, pkg := range updated {
		if pkg.Bump() == BumpMajor {
			majors = append(majors, fmt.Sprintf("- `%s` (%s → %s)", pkg.Name, pkg.OldVersion, pkg.NewVersion))
		}
	}
	if len(majors) > 0 {
		sb.WriteString("\n### Major version bumps\n\n")
		sb.WriteString("These updates may contain breaking changes:\n\n")
		sb.WriteString(strings.Join(majors, "\n"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n### Diff\n\n")
	sb.WriteString("```diff\n")
	sb.WriteString(diffText)
	sb.WriteString("\n```\n")
	sb.WriteString("\n---\n")
	sb.WriteString("*This PR was automatically created by reqsync*\n")
	return sb.String()
}
