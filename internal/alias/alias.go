// Package alias derives URL-safe slugs for catalog entities.
package alias

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
)

// maxProbes bounds the number of disambiguation attempts before giving up.
const maxProbes = 1000

// TakenFunc reports whether an alias is already in use within an organization.
type TakenFunc func(ctx context.Context, alias string) (bool, error)

// Normalize converts a title into its canonical URL-safe form.
// Already-normalized input is returned unchanged.
func Normalize(title string) string {
	return slug.Make(title)
}

// Derive returns a unique alias for title. The normalized form is used as-is
// when free; on collision a numeric suffix is appended (-2, -3, ...).
func Derive(ctx context.Context, title string, taken TakenFunc) (string, error) {
	base := Normalize(title)
	if base == "" {
		return "", fmt.Errorf("title %q normalizes to an empty alias", title)
	}

	candidate := base
	for i := 2; i <= maxProbes; i++ {
		used, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check alias %q: %w", candidate, err)
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("no free alias for %q after %d attempts", title, maxProbes)
}
