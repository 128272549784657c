package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestSelectionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	repo := NewSelectionMemoryRepository(time.Minute)
	repo.now = func() time.Time { return now }

	sel := models.Selection{
		From:   models.Currency{Code: "USD", Label: "United States Dollar", IconRef: "us"},
		Amount: 10,
		Mode:   models.ModeLatest,
	}

	t.Run("Save and Get", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s1", sel))

		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sel, *got)
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		got.Amount = 99

		again, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 10.0, again.Amount)
	})

	t.Run("Missing session", func(t *testing.T) {
		got, err := repo.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Entry expires", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s2", sel))
		now = now.Add(2 * time.Minute)

		got, err := repo.Get(ctx, "s2")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "s3", sel))
		require.NoError(t, repo.Delete(ctx, "s3"))

		got, err := repo.Get(ctx, "s3")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
