//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestUpdatedPackageBump(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to string
		expected entities.BumpKind
	}{
		{name: "major", from: "1.0.0", to: "3.0.1", expected: entities.BumpMajor},
		{name: "minor", from: "1.2.0", to: "1.3.0", expected: entities.BumpMinor},
		{name: "patch", from: "1.2.3", to: "1.2.4", expected: entities.BumpPatch},
		{name: "short patch", from: "1.0", to: "1.0.1", expected: entities.BumpPatch},
		{name: "pre-release", from: "1.0.0", to: "2.0.0rc1", expected: entities.BumpOther},
	}

	for _, tc := range cases {
		t.Run("should classify a "+tc.name+" bump", func(t *testing.T) {
			t.Parallel()

			// given
			pkg := entities.UpdatedPackage{Name: "pkg", OldVersion: tc.from, NewVersion: tc.to}

			// when
			kind := pkg.Bump()

			// then
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestUpdatedPackageString(t *testing.T) {
	t.Parallel()

	t.Run("should render name and both versions", func(t *testing.T) {
		t.Parallel()

		// given
		pkg := entities.UpdatedPackage{Name: "flask", OldVersion: entities.MissingVersion, NewVersion: "3.0.1"}

		// when
		rendered := pkg.String()

		// then
		assert.Equal(t, "flask ? → 3.0.1", rendered)
	})
}
