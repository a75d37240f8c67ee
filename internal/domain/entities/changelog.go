package entities

import (
	"fmt"
	"strings"
)

// Changelog lists the updated packages of a run in human-readable form.
type Changelog struct {
	Count   int
	Entries []string // `name old → new`, in update order
}

// NewChangelog builds the changelog for the given updates.
func NewChangelog(updated []UpdatedPackage) Changelog {
	entries := make([]string, 0, len(updated))
	for _, pkg := range updated {
		entries = append(entries, pkg.String())
	}
	return Changelog{Count: len(updated), Entries: entries}
}

// IsEmpty reports whether nothing was updated.
func (c Changelog) IsEmpty() bool {
	return c.Count == 0
}

const (
	unreleasedHeading = "## [Unreleased]"
	changedSubheading = "### Changed"
	releasePrefix     = "## ["
	bulletPrefix      = "- "
)

// KeepAChangelogEntries renders one Keep-a-Changelog bullet per update.
func KeepAChangelogEntries(updated []UpdatedPackage) []string {
	entries := make([]string, 0, len(updated))
	for _, pkg := range updated {
		entries = append(entries, fmt.Sprintf(
			"%schanged the `%s` dependency from `%s` to `%s`",
			bulletPrefix, pkg.Name, pkg.OldVersion, pkg.NewVersion,
		))
	}
	return entries
}

// InsertChangelogEntry adds bullet entries to the "### Changed" subsection of
// the "## [Unreleased]" release in a Keep-a-Changelog document.
// Content without an Unreleased release is returned unchanged. When the
// release has no Changed subsection yet, one is created right below its heading.
func InsertChangelogEntry(content string, entries []string) string {
	if len(entries) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	section, ok := locateUnreleased(lines)
	if !ok {
		return content
	}

	if section.changed < 0 {
		block := append([]string{"", changedSubheading, ""}, entries...)
		return strings.Join(spliceLines(lines, section.heading+1, block), "\n")
	}

	return strings.Join(spliceLines(lines, section.lastBullet(lines)+1, entries), "\n")
}

// unreleasedSection holds line indexes inside a split changelog document.
type unreleasedSection struct {
	heading int // "## [Unreleased]"
	end     int // next release heading, or len(lines)
	changed int // "### Changed" inside the section, or -1
}

func locateUnreleased(lines []string) (unreleasedSection, bool) {
	section := unreleasedSection{heading: -1, end: len(lines), changed: -1}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case section.heading < 0:
			if trimmed == unreleasedHeading {
				section.heading = i
			}
		case strings.HasPrefix(trimmed, releasePrefix):
			section.end = i
			return section, true
		case trimmed == changedSubheading && section.changed < 0:
			section.changed = i
		}
	}

	return section, section.heading >= 0
}

// lastBullet returns the index of the last bullet of the Changed subsection,
// or the subsection heading itself when it has no bullets.
func (s unreleasedSection) lastBullet(lines []string) int {
	last := s.changed
	for i := s.changed + 1; i < s.end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, bulletPrefix) {
			break
		}
		last = i
	}
	return last
}

func spliceLines(lines []string, at int, extra []string) []string {
	result := make([]string, 0, len(lines)+len(extra))
	result = append(result, lines[:at]...)
	result = append(result, extra...)
	return append(result, lines[at:]...)
}
