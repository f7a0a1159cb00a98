package password

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/random"
)

var ErrTooFewPositions = errors.New("password length must be at least equal to the number of selected character types")

// Generate creates a cryptographically secure random password from the
// given options, guaranteeing at least one character from every enabled,
// non-empty category. Length bounds are the caller's responsibility; the
// only length rule enforced here is that every enabled category fits.
func Generate(opts Options, rng random.Source) (string, error) {
	pool, err := BuildPool(opts)
	if err != nil {
		return "", err
	}

	subsets := pool.Subsets()
	if opts.Length < len(subsets) {
		return "", ErrTooFewPositions
	}

	result := make([]byte, 0, opts.Length)

	// One character from each enabled category first.
	for _, subset := range subsets {
		ch, err := randChar(subset, rng)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the full pool.
	for len(result) < opts.Length {
		ch, err := randChar(pool.Union(), rng)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fisher-Yates shuffle so the guaranteed characters are not
	// predictably placed at the front.
	for i := len(result) - 1; i > 0; i-- {
		j, err := rng.IntN(i + 1)
		if err != nil {
			return "", fmt.Errorf("shuffling password: %w", err)
		}
		result[i], result[j] = result[j], result[i]
	}

	return string(result), nil
}

func randChar(charset string, rng random.Source) (byte, error) {
	n, err := rng.IntN(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing random character: %w", err)
	}
	return charset[n], nil
}
