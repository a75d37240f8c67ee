package pyproject

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
	"github.com/rios0rios0/reqsync/internal/domain/repositories"
)

const (
	projectTable        = "project"
	dependenciesKey     = "dependencies"
	optionalDepsKey     = "optional-dependencies"
	defaultManifestMode = 0o644
)

// PyProjectManifestRepository implements repositories.ManifestRepository for
// the PEP 621 `[project]` table of a pyproject.toml file.
type PyProjectManifestRepository struct {
	path string
}

// NewPyProjectManifestRepository creates a repository for the manifest at path.
func NewPyProjectManifestRepository(path string) repositories.ManifestRepository {
	return &PyProjectManifestRepository{path: path}
}

// Read loads the manifest and extracts its dependency groups.
func (r *PyProjectManifestRepository) Read(_ context.Context) (*entities.Manifest, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", entities.ErrManifestRead, r.path, err)
	}

	groups, document, err := decodeGroups(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", entities.ErrManifestRead, r.path, err)
	}

	logger.Debugf("[pyproject] Read %d dependency groups from %s", len(groups), r.path)
	return &entities.Manifest{
		Path:     r.path,
		Groups:   groups,
		Source:   string(data),
		Document: document,
	}, nil
}

// Serialize renders the manifest. When the manifest still carries its
// original text, only the rewritten requirement strings are replaced so that
// comments and layout survive; otherwise the whole document is re-encoded.
func (r *PyProjectManifestRepository) Serialize(manifest *entities.Manifest) (string, error) {
	if manifest.Source != "" {
		if text, ok := rewriteInPlace(manifest); ok {
			return text, nil
		}
		logger.Warnf("[pyproject] Cannot rewrite %s in place, comments and layout will not be preserved", manifest.Path)
	}
	return encodeCanonical(manifest)
}

// Render serializes both manifests with the same strategy, so that the texts
// only differ in the rewritten requirements.
func (r *PyProjectManifestRepository) Render(original, updated *entities.Manifest) (string, string, error) {
	if updated.Source != "" && updated.Source == original.Source {
		if after, ok := rewriteInPlace(updated); ok {
			return original.Source, after, nil
		}
		logger.Debugf("[pyproject] Rendering %s canonically for the diff", updated.Path)
	}

	before, err := encodeCanonical(original)
	if err != nil {
		return "", "", err
	}
	after, err := encodeCanonical(updated)
	if err != nil {
		return "", "", err
	}
	return before, after, nil
}

// Write persists the manifest through a temporary file renamed over the original.
func (r *PyProjectManifestRepository) Write(_ context.Context, manifest *entities.Manifest) error {
	text, err := r.Serialize(manifest)
	if err != nil {
		return fmt.Errorf("%w %q: %w", entities.ErrManifestWrite, r.path, err)
	}

	mode := os.FileMode(defaultManifestMode)
	if info, statErr := os.Stat(r.path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(r.path), ".pyproject-*.toml")
	if err != nil {
		return fmt.Errorf("%w %q: failed to create temp file: %w", entities.ErrManifestWrite, r.path, err)
	}
	tmpPath := tmpFile.Name()

	if _, writeErr := tmpFile.WriteString(text); writeErr != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w %q: %w", entities.ErrManifestWrite, r.path, writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w %q: %w", entities.ErrManifestWrite, r.path, closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, mode); chmodErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w %q: %w", entities.ErrManifestWrite, r.path, chmodErr)
	}

	if renameErr := os.Rename(tmpPath, r.path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w %q: %w", entities.ErrManifestWrite, r.path, renameErr)
	}

	return nil
}

// decodeGroups parses the TOML text and returns the required group followed
// by the optional groups sorted by name.
func decodeGroups(source string) ([]entities.DependencyGroup, map[string]any, error) {
	document := map[string]any{}
	if _, err := toml.Decode(source, &document); err != nil {
		return nil, nil, fmt.Errorf("invalid TOML: %w", err)
	}

	project, ok := document[projectTable].(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("missing [%s] table", projectTable)
	}

	required, err := stringList(project[dependenciesKey], projectTable+"."+dependenciesKey)
	if err != nil {
		return nil, nil, err
	}
	groups := []entities.DependencyGroup{{Name: entities.RequiredGroup, Requirements: required}}

	rawOptional, present := project[optionalDepsKey]
	if !present {
		return groups, document, nil
	}
	optional, ok := rawOptional.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%s.%s must be a table", projectTable, optionalDepsKey)
	}

	names := make([]string, 0, len(optional))
	for name := range optional {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		requirements, listErr := stringList(optional[name], projectTable+"."+optionalDepsKey+"."+name)
		if listErr != nil {
			return nil, nil, listErr
		}
		groups = append(groups, entities.DependencyGroup{
			Name:         name,
			Optional:     true,
			Requirements: requirements,
		})
	}

	return groups, document, nil
}

func stringList(raw any, key string) ([]string, error) {
	if raw == nil {
		return []string{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}

	values := make([]string, 0, len(items))
	for i, item := range items {
		value, isString := item.(string)
		if !isString {
			return nil, fmt.Errorf("%s[%d] must be a string", key, i)
		}
		values = append(values, value)
	}
	return values, nil
}

// rewriteInPlace replaces the string elements of rewritten requirements inside
// their own dependency array of the original text. It reports false when an
// array cannot be located or when the result does not decode back to the
// original document with exactly the manifest groups.
func rewriteInPlace(manifest *entities.Manifest) (string, bool) {
	original, _, err := decodeGroups(manifest.Source)
	if err != nil || len(original) != len(manifest.Groups) {
		return "", false
	}

	spans := arraySpans(manifest.Source)
	var edits []textEdit
	for gi, group := range manifest.Groups {
		before := original[gi]
		if before.Name != group.Name || len(before.Requirements) != len(group.Requirements) {
			return "", false
		}
		if slices.Equal(before.Requirements, group.Requirements) {
			continue
		}

		span, found := spans[groupPath(group)]
		if !found {
			return "", false
		}
		items := arrayStrings(manifest.Source, span)
		if len(items) != len(group.Requirements) {
			return "", false
		}

		for ri, requirement := range group.Requirements {
			if requirement == before.Requirements[ri] {
				continue
			}
			raw := manifest.Source[items[ri].start:items[ri].end]
			if value, ok := decodeString(raw); !ok || value != before.Requirements[ri] {
				return "", false
			}
			edits = append(edits, textEdit{span: items[ri], text: quoteLike(raw, requirement)})
		}
	}

	text := applyEdits(manifest.Source, edits)
	if !sameDocument(text, manifest) {
		return "", false
	}
	return text, true
}

func groupPath(group entities.DependencyGroup) string {
	if !group.Optional {
		return pathKey(projectTable, dependenciesKey)
	}
	return pathKey(projectTable, optionalDepsKey, group.Name)
}

// sameDocument reports whether text decodes to the manifest groups and, outside
// of them, to the same document as the original source.
func sameDocument(text string, manifest *entities.Manifest) bool {
	groups, document, err := decodeGroups(text)
	if err != nil || !sameGroups(groups, manifest.Groups) {
		return false
	}
	_, original, err := decodeGroups(manifest.Source)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(withoutGroups(document), withoutGroups(original))
}

func withoutGroups(document map[string]any) map[string]any {
	stripped := make(map[string]any, len(document))
	for key, value := range document {
		stripped[key] = value
	}
	project := map[string]any{}
	if existing, ok := document[projectTable].(map[string]any); ok {
		for key, value := range existing {
			project[key] = value
		}
	}
	delete(project, dependenciesKey)
	delete(project, optionalDepsKey)
	stripped[projectTable] = project
	return stripped
}

func sameGroups(a, b []entities.DependencyGroup) bool {
	return slices.EqualFunc(a, b, func(x, y entities.DependencyGroup) bool {
		return x.Name == y.Name && slices.Equal(x.Requirements, y.Requirements)
	})
}

// encodeCanonical projects the groups onto a copy of the decoded document and
// encodes it with the TOML encoder.
func encodeCanonical(manifest *entities.Manifest) (string, error) {
	document := make(map[string]any, len(manifest.Document)+1)
	for key, value := range manifest.Document {
		document[key] = value
	}

	project := map[string]any{}
	if existing, ok := document[projectTable].(map[string]any); ok {
		for key, value := range existing {
			project[key] = value
		}
	}

	optional := map[string]any{}
	for _, group := range manifest.Groups {
		if !group.Optional {
			if _, present := project[dependenciesKey]; present || len(group.Requirements) > 0 {
				project[dependenciesKey] = group.Requirements
			}
			continue
		}
		optional[group.Name] = group.Requirements
	}
	if len(optional) > 0 {
		project[optionalDepsKey] = optional
	}
	document[projectTable] = project

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(document); err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.String(), nil
}
