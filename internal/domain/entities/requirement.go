package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Operator is a version comparison operator as it appears in a requirement.
type Operator string

const (
	OperatorEqual          Operator = "=="
	OperatorCompatible     Operator = "~="
	OperatorGreaterOrEqual Operator = ">="
	OperatorLessOrEqual    Operator = "<="
	OperatorNotEqual       Operator = "!="
	OperatorGreater        Operator = ">"
	OperatorLess           Operator = "<"
	OperatorArbitraryEqual Operator = "==="

	// DefaultOperator is used when a versioned requirement carries no operator.
	DefaultOperator = OperatorCompatible
)

// MissingVersion stands in for the old version of a requirement that had none.
const MissingVersion = "?"

var (
	ErrEmptyRequirement  = errors.New("empty requirement")
	ErrInvalidName       = errors.New("invalid package name")
	ErrInvalidExtras     = errors.New("invalid extras")
	ErrInvalidSpecifier  = errors.New("invalid version specifier")
	ErrCompoundSpecifier = errors.New("compound version specifiers are not rewritten")
	ErrURLRequirement    = errors.New("direct URL requirements are not rewritten")
)

var (
	namePattern      = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)
	extraPattern     = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	specifierPattern = regexp.MustCompile(`^(===|~=|==|!=|<=|>=|<|>)\s*([A-Za-z0-9][A-Za-z0-9.*+!_-]*)$`)
)

// ParseError is returned when a requirement string cannot be parsed.
type ParseError struct {
	Source string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse requirement %q: %v", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Reason }

// Requirement is one parsed dependency constraint.
// Operator and Version are either both set or both empty.
type Requirement struct {
	Name     string
	Extras   []string
	Operator Operator
	Version  string
	Marker   string
}

// HasVersion reports whether the requirement pins a version.
func (r Requirement) HasVersion() bool {
	return r.Version != ""
}

// WithVersion returns a copy of the requirement constrained to version,
// keeping the original operator or falling back to DefaultOperator.
func (r Requirement) WithVersion(version string) Requirement {
	updated := r
	updated.Extras = append([]string(nil), r.Extras...)
	updated.Version = version
	if updated.Operator == "" {
		updated.Operator = DefaultOperator
	}
	return updated
}

// String renders the requirement in its compact form, e.g. `flask[async]>=3.0.1; python_version >= "3.9"`.
func (r Requirement) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if len(r.Extras) > 0 {
		sb.WriteString("[")
		sb.WriteString(strings.Join(r.Extras, ","))
		sb.WriteString("]")
	}
	if r.HasVersion() {
		sb.WriteString(string(r.Operator))
		sb.WriteString(r.Version)
	}
	if r.Marker != "" {
		sb.WriteString("; ")
		sb.WriteString(r.Marker)
	}
	return sb.String()
}

// ParseRequirement parses a single PEP 508 style requirement string.
// Only the single-clause form `name[extras] <op> <version> ; <marker>` is
// accepted; anything else yields a *ParseError.
func ParseRequirement(source string) (Requirement, error) {
	rest := strings.TrimSpace(source)
	if rest == "" {
		return Requirement{}, &ParseError{Source: source, Reason: ErrEmptyRequirement}
	}

	var req Requirement

	if idx := strings.Index(rest, ";"); idx >= 0 {
		req.Marker = strings.TrimSpace(rest[idx+1:])
		rest = strings.TrimSpace(rest[:idx])
	}

	if strings.Contains(rest, "@") {
		return Requirement{}, &ParseError{Source: source, Reason: ErrURLRequirement}
	}

	req.Name = namePattern.FindString(rest)
	if req.Name == "" {
		return Requirement{}, &ParseError{Source: source, Reason: ErrInvalidName}
	}
	rest = strings.TrimSpace(rest[len(req.Name):])

	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return Requirement{}, &ParseError{Source: source, Reason: ErrInvalidExtras}
		}
		extras, err := parseExtras(rest[1:end])
		if err != nil {
			return Requirement{}, &ParseError{Source: source, Reason: err}
		}
		req.Extras = extras
		rest = strings.TrimSpace(rest[end+1:])
	}

	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		rest = strings.TrimSpace(rest[1 : len(rest)-1])
	}

	if rest == "" {
		return req, nil
	}

	if strings.Contains(rest, ",") {
		return Requirement{}, &ParseError{Source: source, Reason: ErrCompoundSpecifier}
	}

	match := specifierPattern.FindStringSubmatch(rest)
	if match == nil {
		return Requirement{}, &ParseError{Source: source, Reason: ErrInvalidSpecifier}
	}
	req.Operator = Operator(match[1])
	req.Version = match[2]

	return req, nil
}

func parseExtras(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	extras := make([]string, 0, len(parts))
	for _, part := range parts {
		extra := strings.TrimSpace(part)
		if !extraPattern.MatchString(extra) {
			return nil, ErrInvalidExtras
		}
		extras = append(extras, extra)
	}
	return extras, nil
}
