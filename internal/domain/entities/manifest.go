package entities

// RequiredGroup is the name of the mandatory dependency group.
const RequiredGroup = "dependencies"

// DependencyGroup is an ordered list of requirement strings.
type DependencyGroup struct {
	Name         string
	Optional     bool
	Requirements []string
}

// Manifest is the in-memory form of a project's dependency declarations.
// Groups hold the required group first, then the optional groups sorted by name.
type Manifest struct {
	Path   string
	Groups []DependencyGroup

	// Source is the raw manifest text as read from disk, and Document its
	// decoded form. Both are treated as read-only; serializers project Groups
	// back onto them.
	Source   string
	Document map[string]any
}

// Clone returns a copy of the manifest whose groups can be mutated without
// affecting the original.
func (m *Manifest) Clone() *Manifest {
	groups := make([]DependencyGroup, len(m.Groups))
	for i, group := range m.Groups {
		groups[i] = DependencyGroup{
			Name:         group.Name,
			Optional:     group.Optional,
			Requirements: append([]string(nil), group.Requirements...),
		}
	}
	return &Manifest{
		Path:     m.Path,
		Groups:   groups,
		Source:   m.Source,
		Document: m.Document,
	}
}

// Group returns the group with the given name.
func (m *Manifest) Group(name string) (DependencyGroup, bool) {
	for _, group := range m.Groups {
		if group.Name == name {
			return group, true
		}
	}
	return DependencyGroup{}, false
}

// RequirementCount returns the number of requirement strings across all groups.
func (m *Manifest) RequirementCount() int {
	total := 0
	for _, group := range m.Groups {
		total += len(group.Requirements)
	}
	return total
}
