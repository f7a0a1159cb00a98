// Package command parses the text syntax for password generation
// requests: "/pass [length] [--option ...]".
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/passforge/passforge-go/internal/password"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownOption  = errors.New("unknown option")
	ErrInvalidLength  = errors.New("invalid length: expected a number")
)

// Parse interprets a generation command and returns the resulting options.
// A leading "/pass" or "/password" token is accepted and stripped; any
// other "/..." token is rejected. A bare integer sets the length, and
// flags toggle categories. Flags apply in order, so the last occurrence
// wins when a flag and its negation are both given.
//
// Supported flags: --symbols/--no-symbols, --digits/--no-digits,
// --uppercase/--no-uppercase, --lowercase/--no-lowercase, --no-ambiguous.
func Parse(input string, defaults password.Options) (password.Options, error) {
	opts := defaults

	fields := strings.Fields(input)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		if fields[0] != "/pass" && fields[0] != "/password" {
			return password.Options{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
		}
		fields = fields[1:]
	}

	for _, field := range fields {
		if strings.HasPrefix(field, "--") {
			switch field {
			case "--symbols":
				opts.Symbols = true
			case "--no-symbols":
				opts.Symbols = false
			case "--digits":
				opts.Digits = true
			case "--no-digits":
				opts.Digits = false
			case "--uppercase":
				opts.Uppercase = true
			case "--no-uppercase":
				opts.Uppercase = false
			case "--lowercase":
				opts.Lowercase = true
			case "--no-lowercase":
				opts.Lowercase = false
			case "--no-ambiguous":
				opts.ExcludeAmbiguous = true
			default:
				return password.Options{}, fmt.Errorf("%w: %s", ErrUnknownOption, field)
			}
			continue
		}

		length, err := strconv.Atoi(field)
		if err != nil {
			return password.Options{}, fmt.Errorf("%w: %q", ErrInvalidLength, field)
		}
		opts.Length = length
	}

	return opts, nil
}
