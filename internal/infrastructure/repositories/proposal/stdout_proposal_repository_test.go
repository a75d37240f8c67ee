//go:build unit

package proposal //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reqsync/internal/domain/entities"
)

func TestStdoutProposalRepository(t *testing.T) {
	t.Parallel()

	t.Run("should print the title and the body", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repo := &StdoutProposalRepository{out: &out}

		// when
		err := repo.Publish(context.Background(), entities.Proposal{Title: "title", Body: "body\n"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "title\n\nbody\n", out.String())
	})

	t.Run("should print nothing on skip", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		repo := &StdoutProposalRepository{out: &out}

		// when
		err := repo.Skip(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}
