package pyproject

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// textSpan is the byte range [start, end) of a token in the manifest text.
type textSpan struct {
	start int
	end   int
}

// textEdit replaces the bytes of span with text.
type textEdit struct {
	span textSpan
	text string
}

// pathKey joins key segments; quoted keys may contain dots, so a control
// character separates them.
func pathKey(segments ...string) string {
	return strings.Join(segments, "\x00")
}

// arraySpans walks the top-level structure of a TOML document and returns the
// span of every array value by its full key path. Arrays nested inside inline
// tables are not indexed.
func arraySpans(text string) map[string]textSpan {
	spans := map[string]textSpan{}
	var table []string

	for i := skipBlank(text, 0); i < len(text); i = skipBlank(text, i) {
		switch text[i] {
		case '#':
			i = skipComment(text, i)
		case '[':
			arrayTable := strings.HasPrefix(text[i:], "[[")
			start := i + 1
			if arrayTable {
				start++
			}
			header, next, ok := parseKey(text, start, ']')
			if !ok {
				return spans
			}
			table = header
			if arrayTable {
				// keys of array tables never hold dependency groups
				table = append(header, "[]")
			}
			i = next + 1
			if arrayTable {
				i++
			}
		default:
			key, next, ok := parseKey(text, i, '=')
			if !ok {
				return spans
			}
			i = skipSpaces(text, next+1)
			end := skipValue(text, i)
			if i < len(text) && text[i] == '[' {
				path := append(append([]string{}, table...), key...)
				spans[pathKey(path...)] = textSpan{start: i, end: end}
			}
			i = end
		}
	}

	return spans
}

// arrayStrings returns the spans of the string elements of the array at span.
func arrayStrings(text string, span textSpan) []textSpan {
	var items []textSpan
	depth := 0
	for i := span.start; i < span.end; {
		switch text[i] {
		case '"', '\'':
			end := skipString(text, i)
			if depth == 1 {
				items = append(items, textSpan{start: i, end: end})
			}
			i = end
			continue
		case '#':
			i = skipComment(text, i)
			continue
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		}
		i++
	}
	return items
}

// parseKey reads a possibly dotted, possibly quoted key starting at i and
// returns its segments and the index of the stop character.
func parseKey(text string, i int, stop byte) ([]string, int, bool) {
	var segments []string
	for {
		i = skipSpaces(text, i)
		if i >= len(text) {
			return nil, i, false
		}

		switch text[i] {
		case '"', '\'':
			end := skipString(text, i)
			segment, ok := decodeString(text[i:end])
			if !ok {
				return nil, i, false
			}
			segments = append(segments, segment)
			i = end
		default:
			start := i
			for i < len(text) && isBareKeyChar(text[i]) {
				i++
			}
			if i == start {
				return nil, i, false
			}
			segments = append(segments, text[start:i])
		}

		i = skipSpaces(text, i)
		if i < len(text) && text[i] == '.' {
			i++
			continue
		}
		if i < len(text) && text[i] == stop {
			return segments, i, true
		}
		return nil, i, false
	}
}

func skipValue(text string, i int) int {
	if i >= len(text) {
		return i
	}
	switch text[i] {
	case '"', '\'':
		return skipString(text, i)
	case '[', '{':
		return skipBracketed(text, i)
	default:
		for i < len(text) && text[i] != '\n' && text[i] != '#' {
			i++
		}
		return i
	}
}

func skipBracketed(text string, i int) int {
	depth := 0
	for i < len(text) {
		switch text[i] {
		case '"', '\'':
			i = skipString(text, i)
			continue
		case '#':
			i = skipComment(text, i)
			continue
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return len(text)
}

// skipString returns the index right after the string literal starting at i.
func skipString(text string, i int) int {
	quote := text[i]
	triple := strings.Repeat(string(quote), 3)

	if strings.HasPrefix(text[i:], triple) {
		end := strings.Index(text[i+3:], triple)
		if end < 0 {
			return len(text)
		}
		j := i + 3 + end + 3
		// multi-line strings may end with up to two extra quotes
		for n := 0; n < 2 && j < len(text) && text[j] == quote; n++ {
			j++
		}
		return j
	}

	for j := i + 1; j < len(text); j++ {
		switch text[j] {
		case '\\':
			if quote == '"' {
				j++
			}
		case quote:
			return j + 1
		case '\n':
			return j
		}
	}
	return len(text)
}

func skipComment(text string, i int) int {
	for i < len(text) && text[i] != '\n' {
		i++
	}
	return i
}

func skipSpaces(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return i
}

func skipBlank(text string, i int) int {
	for i < len(text) && strings.IndexByte(" \t\r\n", text[i]) >= 0 {
		i++
	}
	return i
}

func isBareKeyChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// decodeString decodes a single TOML string literal, escapes included.
func decodeString(raw string) (string, bool) {
	var holder struct {
		Value string `toml:"v"`
	}
	if _, err := toml.Decode("v = "+raw, &holder); err != nil {
		return "", false
	}
	return holder.Value, true
}

// quoteLike renders value as a TOML string, keeping the literal quote style of
// raw when value allows it.
func quoteLike(raw, value string) string {
	literal := strings.HasPrefix(raw, "'") && !strings.HasPrefix(raw, "'''")
	if literal && !strings.ContainsAny(value, "'\n") {
		return "'" + value + "'"
	}
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func applyEdits(text string, edits []textEdit) string {
	sort.Slice(edits, func(a, b int) bool { return edits[a].span.start > edits[b].span.start })
	for _, edit := range edits {
		text = text[:edit.span.start] + edit.text + text[edit.span.end:]
	}
	return text
}
