package alias

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Introduction to Go", "introduction-to-go"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Ünïcödé Tîtle", "unicode-title"},
		{"SQL: Joins, Aggregates!", "sql-joins-aggregates"},
		{"already-normalized", "already-normalized"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.title))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	titles := []string{"Introduction to Go", "Ünïcödé Tîtle", "UPPER lower 123"}
	for _, title := range titles {
		once := Normalize(title)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestDerive(t *testing.T) {
	ctx := context.Background()

	neverTaken := func(ctx context.Context, alias string) (bool, error) { return false, nil }

	t.Run("free alias used as-is", func(t *testing.T) {
		got, err := Derive(ctx, "Introduction to Go", neverTaken)
		assert.NoError(t, err)
		assert.Equal(t, "introduction-to-go", got)
	})

	t.Run("collision appends numeric suffix", func(t *testing.T) {
		taken := map[string]bool{"introduction-to-go": true}
		got, err := Derive(ctx, "Introduction to Go", func(ctx context.Context, alias string) (bool, error) {
			return taken[alias], nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "introduction-to-go-2", got)
	})

	t.Run("suffix keeps counting past earlier collisions", func(t *testing.T) {
		taken := map[string]bool{
			"introduction-to-go":   true,
			"introduction-to-go-2": true,
			"introduction-to-go-3": true,
		}
		got, err := Derive(ctx, "Introduction to Go", func(ctx context.Context, alias string) (bool, error) {
			return taken[alias], nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "introduction-to-go-4", got)
	})

	t.Run("empty normalization rejected", func(t *testing.T) {
		_, err := Derive(ctx, "!!!", neverTaken)
		assert.Error(t, err)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		wantErr := errors.New("db down")
		_, err := Derive(ctx, "Introduction to Go", func(ctx context.Context, alias string) (bool, error) {
			return false, wantErr
		})
		assert.ErrorIs(t, err, wantErr)
	})
}
