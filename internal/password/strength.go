package password

import "math"

// Strength is the tier a password's estimated entropy falls into.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Report carries the entropy estimate for a generated password. It is
// derived from pool size and length only and holds no secret material.
type Report struct {
	EntropyBits float64
	Tier        Strength
}

// Estimate computes the brute-force search space of a password of the
// given length drawn uniformly from a pool of poolSize characters.
// Entropy is length * log2(poolSize); tiers are weak below 50 bits,
// medium from 50, strong from 80.
func Estimate(poolSize, length int) Report {
	bits := float64(length) * math.Log2(float64(poolSize))

	tier := Weak
	switch {
	case bits >= 80:
		tier = Strong
	case bits >= 50:
		tier = Medium
	}

	return Report{EntropyBits: bits, Tier: tier}
}
