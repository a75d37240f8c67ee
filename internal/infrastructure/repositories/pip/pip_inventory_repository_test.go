//go:build unit

package pip //nolint:testpackage // tests unexported functions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	dir  string
	name string
	args []string
}

func stubRunner(calls *[]recordedCall, output string, err error) commandRunner {
	return func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedCall{dir: dir, name: name, args: args})
		return []byte(output), err
	}
}

func TestPipInventoryRepository_Installed(t *testing.T) {
	t.Parallel()

	t.Run("should invoke pip list in JSON format inside the project directory", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []recordedCall
		repo := &PipInventoryRepository{
			command: []string{"python3", "-m", "pip"},
			dir:     "/work",
			run:     stubRunner(&calls, `[{"name": "Flask", "version": "1.0.0"}]`, nil),
		}

		// when
		installed, err := repo.Installed(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, installed, 1)
		assert.Equal(t, "Flask", installed[0].Name)
		assert.Equal(t, "1.0.0", installed[0].Version)
		require.Len(t, calls, 1)
		assert.Equal(t, "/work", calls[0].dir)
		assert.Equal(t, "python3", calls[0].name)
		assert.Equal(t, []string{"-m", "pip", "list", "--format=json", "--disable-pip-version-check"}, calls[0].args)
	})

	t.Run("should wrap runner failures", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []recordedCall
		repo := &PipInventoryRepository{
			command: []string{"pip"},
			run:     stubRunner(&calls, "", errors.New("exit status 1")),
		}

		// when
		_, err := repo.Installed(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pip list failed")
	})

	t.Run("should fail without a configured command", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &PipInventoryRepository{}

		// when
		_, err := repo.Installed(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})
}

func TestPipInventoryRepository_Outdated(t *testing.T) {
	t.Parallel()

	t.Run("should pass --outdated and read the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		var calls []recordedCall
		output := `[{"name": "flask", "version": "1.0.0", "latest_version": "3.0.1", "latest_filetype": "wheel"}]`
		repo := &PipInventoryRepository{
			command: []string{"pip"},
			run:     stubRunner(&calls, output, nil),
		}

		// when
		outdated, err := repo.Outdated(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, outdated, 1)
		assert.Equal(t, "3.0.1", outdated[0].LatestVersion)
		assert.Equal(t, "--outdated", calls[0].args[len(calls[0].args)-1])
		assert.Equal(t, "pip", calls[0].name)
	})
}

func TestParsePackageList(t *testing.T) {
	t.Parallel()

	t.Run("should treat empty output as an empty list", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("  \n")

		// when
		packages, err := parsePackageList(output)

		// then
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("should parse an empty JSON array", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("[]\n")

		// when
		packages, err := parsePackageList(output)

		// then
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("should reject malformed output", func(t *testing.T) {
		t.Parallel()

		// given
		output := []byte("WARNING: pip is being invoked by an old script wrapper")

		// when
		_, err := parsePackageList(output)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse pip output")
	})
}
