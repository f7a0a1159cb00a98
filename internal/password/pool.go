package password

import (
	"errors"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Characters easily confused when transcribed by hand.
	ambiguousChars = "0Oo1lI"
)

var ErrEmptyPool = errors.New("character pool is empty: enable at least one character type")

// Options configures password generation. At least one character category
// must be enabled for a pool to be buildable.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns 16 characters with all categories enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Pool is the working alphabet for one generation request: the enabled,
// non-empty category subsets in fixed order, plus their union. Pools are
// deterministic for equal options and never mutated after construction.
type Pool struct {
	subsets []string
	union   string
}

// BuildPool assembles the pool from the enabled categories, stripping
// ambiguous characters from every subset when requested. It fails with
// ErrEmptyPool when no enabled subset survives filtering.
func BuildPool(opts Options) (Pool, error) {
	var p Pool

	add := func(subset string) {
		if opts.ExcludeAmbiguous {
			subset = stripAmbiguous(subset)
		}
		if subset == "" {
			return
		}
		p.subsets = append(p.subsets, subset)
		p.union += subset
	}

	if opts.Lowercase {
		add(lowercaseChars)
	}
	if opts.Uppercase {
		add(uppercaseChars)
	}
	if opts.Digits {
		add(digitChars)
	}
	if opts.Symbols {
		add(symbolChars)
	}

	if len(p.subsets) == 0 {
		return Pool{}, ErrEmptyPool
	}
	return p, nil
}

// Size returns the number of distinct characters in the pool. The category
// subsets are disjoint by construction, so the union length is the size.
func (p Pool) Size() int {
	return len(p.union)
}

// Union returns every eligible character in pool order.
func (p Pool) Union() string {
	return p.union
}

// Subsets returns the enabled, non-empty category subsets in pool order.
func (p Pool) Subsets() []string {
	return p.subsets
}

func stripAmbiguous(subset string) string {
	var b strings.Builder
	for i := 0; i < len(subset); i++ {
		if strings.IndexByte(ambiguousChars, subset[i]) < 0 {
			b.WriteByte(subset[i])
		}
	}
	return b.String()
}
