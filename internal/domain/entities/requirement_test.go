//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestParseRequirement(t *testing.T) {
	t.Parallel()

	t.Run("should parse name, operator and version", func(t *testing.T) {
		t.Parallel()

		// given
		source := "flask>=1.0.0"

		// when
		req, err := entities.ParseRequirement(source)

		// then
		require.NoError(t, err)
		assert.Equal(t, "flask", req.Name)
		assert.Equal(t, entities.OperatorGreaterOrEqual, req.Operator)
		assert.Equal(t, "1.0.0", req.Version)
		assert.True(t, req.HasVersion())
	})

	t.Run("should parse an unconstrained requirement", func(t *testing.T) {
		t.Parallel()

		// given
		source := "httpx"

		// when
		req, err := entities.ParseRequirement(source)

		// then
		require.NoError(t, err)
		assert.Equal(t, "httpx", req.Name)
		assert.Empty(t, req.Operator)
		assert.False(t, req.HasVersion())
	})

	t.Run("should parse extras, spaces and environment markers", func(t *testing.T) {
		t.Parallel()

		// given
		source := `Flask [async, dotenv] >= 2.0 ; python_version >= "3.9"`

		// when
		req, err := entities.ParseRequirement(source)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Flask", req.Name)
		assert.Equal(t, []string{"async", "dotenv"}, req.Extras)
		assert.Equal(t, entities.OperatorGreaterOrEqual, req.Operator)
		assert.Equal(t, "2.0", req.Version)
		assert.Equal(t, `python_version >= "3.9"`, req.Marker)
	})

	t.Run("should parse a parenthesized specifier", func(t *testing.T) {
		t.Parallel()

		// given
		source := "requests (==2.0.0)"

		// when
		req, err := entities.ParseRequirement(source)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OperatorEqual, req.Operator)
		assert.Equal(t, "2.0.0", req.Version)
	})

	t.Run("should prefer the arbitrary equality operator over plain equality", func(t *testing.T) {
		t.Parallel()

		// given
		source := "legacy===1.0-custom"

		// when
		req, err := entities.ParseRequirement(source)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OperatorArbitraryEqual, req.Operator)
		assert.Equal(t, "1.0-custom", req.Version)
	})

	t.Run("should return typed errors for malformed requirements", func(t *testing.T) {
		t.Parallel()

		cases := map[string]error{
			"":                      entities.ErrEmptyRequirement,
			"   ":                   entities.ErrEmptyRequirement,
			">=1.0":                 entities.ErrInvalidName,
			"pkg>>1.0":              entities.ErrInvalidSpecifier,
			"pkg==":                 entities.ErrInvalidSpecifier,
			"pkg[extra":             entities.ErrInvalidExtras,
			"pkg[bad extra]>=1":     entities.ErrInvalidExtras,
			"pkg>=1.0,<2.0":         entities.ErrCompoundSpecifier,
			"pkg @ https://x/y.whl": entities.ErrURLRequirement,
		}

		for source, expected := range cases {
			// when
			_, err := entities.ParseRequirement(source)

			// then
			require.Error(t, err, source)
			assert.ErrorIs(t, err, expected, source)

			var parseErr *entities.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, source, parseErr.Source)
		}
	})
}

func TestRequirementString(t *testing.T) {
	t.Parallel()

	t.Run("should render the compact form", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{
			Name:     "Flask",
			Extras:   []string{"async", "dotenv"},
			Operator: entities.OperatorGreaterOrEqual,
			Version:  "2.0",
			Marker:   `python_version >= "3.9"`,
		}

		// when
		rendered := req.String()

		// then
		assert.Equal(t, `Flask[async,dotenv]>=2.0; python_version >= "3.9"`, rendered)
	})

	t.Run("should render an unconstrained requirement as its name", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{Name: "httpx"}

		// when
		rendered := req.String()

		// then
		assert.Equal(t, "httpx", rendered)
	})
}

func TestRequirementWithVersion(t *testing.T) {
	t.Parallel()

	t.Run("should keep the original operator", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{Name: "flask", Operator: entities.OperatorLessOrEqual, Version: "1.0"}

		// when
		updated := req.WithVersion("3.0.1")

		// then
		assert.Equal(t, "flask<=3.0.1", updated.String())
		assert.Equal(t, "1.0", req.Version)
	})

	t.Run("should fall back to the compatible release operator", func(t *testing.T) {
		t.Parallel()

		// given
		req := entities.Requirement{Name: "pkg", Version: "1.0"}

		// when
		updated := req.WithVersion("2.0")

		// then
		assert.Equal(t, entities.DefaultOperator, updated.Operator)
		assert.Equal(t, "pkg~=2.0", updated.String())
	})
}
