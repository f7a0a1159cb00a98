package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/passforge/passforge-go/internal/command"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/random"
)

var (
	ErrLengthTooShort = errors.New("password length below minimum")
	ErrLengthTooLong  = errors.New("password length above maximum")
)

// GeneratorService handles password generation business logic: applying
// request defaults, enforcing the configured length bounds, and scoring
// the result. The generated password is returned to the caller and never
// logged or stored.
type GeneratorService struct {
	defaultLength int
	minLength     int
	maxLength     int
	rng           random.Source
}

// NewGeneratorService creates a GeneratorService with the configured
// length policy and randomness source.
func NewGeneratorService(cfg config.Config, rng random.Source) *GeneratorService {
	return &GeneratorService{
		defaultLength: cfg.DefaultLength,
		minLength:     cfg.MinLength,
		maxLength:     cfg.MaxLength,
		rng:           rng,
	}
}

// Generate produces a password based on the given request. Missing
// category flags default to enabled, a missing length to the configured
// default.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := password.Options{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Digits:           boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	return s.generate(opts)
}

// GenerateFromCommand parses a "/pass [length] [--option ...]" command and
// produces a password from the resulting options.
func (s *GeneratorService) GenerateFromCommand(req model.CommandRequest) (model.GenerateResponse, error) {
	defaults := password.DefaultOptions()
	defaults.Length = s.defaultLength

	opts, err := command.Parse(req.Command, defaults)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return s.generate(opts)
}

func (s *GeneratorService) generate(opts password.Options) (model.GenerateResponse, error) {
	if opts.Length < s.minLength {
		return model.GenerateResponse{}, fmt.Errorf("%w of %d characters", ErrLengthTooShort, s.minLength)
	}
	if opts.Length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w of %d characters", ErrLengthTooLong, s.maxLength)
	}

	pw, err := password.Generate(opts, s.rng)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	// Pool construction is deterministic, and it cannot fail after a
	// successful generation.
	pool, _ := password.BuildPool(opts)
	report := password.Estimate(pool.Size(), opts.Length)

	// Metadata only, never the password itself.
	slog.Info("password generated",
		"length", opts.Length,
		"pool_size", pool.Size(),
		"entropy_bits", report.EntropyBits,
		"strength", report.Tier.String(),
	)

	return model.GenerateResponse{
		Password:    pw,
		Length:      len(pw),
		PoolSize:    pool.Size(),
		EntropyBits: report.EntropyBits,
		Strength:    report.Tier.String(),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
