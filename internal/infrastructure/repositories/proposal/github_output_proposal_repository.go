package proposal

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

const outputFileMode = 0o644

// GitHubOutputProposalRepository implements repositories.ProposalRepository
// by appending step outputs to the GitHub Actions $GITHUB_OUTPUT file, where
// a later workflow step picks them up to open the pull request.
type GitHubOutputProposalRepository struct {
	path      string
	delimiter func() string
}

// NewGitHubOutputProposalRepository creates a repository appending to path.
func NewGitHubOutputProposalRepository(path string) repositories.ProposalRepository {
	return &GitHubOutputProposalRepository{
		path:      path,
		delimiter: func() string { return "ghadelimiter_" + uuid.NewString() },
	}
}

func (r *GitHubOutputProposalRepository) Name() string { return entities.OutputGitHub }

// Publish writes the changes flag, the count, the title, the body and the diff.
func (r *GitHubOutputProposalRepository) Publish(_ context.Context, proposal entities.Proposal) error {
	var sb strings.Builder
	writeValue(&sb, "changes", "true")
	writeValue(&sb, "count", strconv.Itoa(proposal.Count))
	writeValue(&sb, "title", proposal.Title)
	if err := r.writeMultiline(&sb, "body", proposal.Body); err != nil {
		return err
	}
	if err := r.writeMultiline(&sb, "diff", proposal.Diff); err != nil {
		return err
	}
	return r.appendOutput(sb.String())
}

// Skip writes changes=false so the workflow can stop early.
func (r *GitHubOutputProposalRepository) Skip(_ context.Context) error {
	var sb strings.Builder
	writeValue(&sb, "changes", "false")
	writeValue(&sb, "count", "0")
	return r.appendOutput(sb.String())
}

func writeValue(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "%s=%s\n", name, strings.ReplaceAll(value, "\n", " "))
}

func (r *GitHubOutputProposalRepository) writeMultiline(sb *strings.Builder, name, value string) error {
	delimiter := r.delimiter()
	if strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q contains its own delimiter", name)
	}
	fmt.Fprintf(sb, "%s<<%s\n%s\n%s\n", name, delimiter, strings.TrimSuffix(value, "\n"), delimiter)
	return nil
}

func (r *GitHubOutputProposalRepository) appendOutput(content string) error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", r.path, err)
	}

	if _, writeErr := file.WriteString(content); writeErr != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %q: %w", r.path, writeErr)
	}
	if closeErr := file.Close(); closeErr != nil {
		return fmt.Errorf("failed to close %q: %w", r.path, closeErr)
	}

	logger.Debugf("[proposal] Appended outputs to %s", r.path)
	return nil
}
