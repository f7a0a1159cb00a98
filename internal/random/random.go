package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source produces uniform random indices. Implementations must be free of
// modulo bias; production code uses the OS CSPRNG, tests may substitute a
// deterministic source.
type Source interface {
	// IntN returns a uniform random integer in [0, n). n must be > 0.
	IntN(n int) (int, error)
}

type cryptoSource struct{}

// New returns a Source backed by crypto/rand.
func New() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: bound must be positive, got %d", n)
	}
	// rand.Int rejection-samples internally, so the result is unbiased.
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random: reading from OS entropy source: %w", err)
	}
	return int(v.Int64()), nil
}
