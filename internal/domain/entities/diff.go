package entities

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff returns the lines that differ between before and after, each
// prefixed with "-" (removed) or "+" (added). Unchanged lines and headers are
// not part of the output, so equal inputs yield an empty slice.
func LineDiff(before, after string) []string {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines)

	var out []string
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			continue
		}
		for _, line := range splitLines(d.Text) {
			out = append(out, prefix+line)
		}
	}
	return out
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
