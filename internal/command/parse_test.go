package command

import (
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/password"
)

func defaults() password.Options {
	return password.DefaultOptions()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    password.Options
		wantErr error
	}{
		{
			name:  "empty input keeps defaults",
			input: "",
			want:  defaults(),
		},
		{
			name:  "bare length",
			input: "24",
			want: func() password.Options {
				o := defaults()
				o.Length = 24
				return o
			}(),
		},
		{
			name:  "length with flags",
			input: "20 --no-symbols --no-ambiguous",
			want: func() password.Options {
				o := defaults()
				o.Length = 20
				o.Symbols = false
				o.ExcludeAmbiguous = true
				return o
			}(),
		},
		{
			name:  "leading pass command",
			input: "/pass 24",
			want: func() password.Options {
				o := defaults()
				o.Length = 24
				return o
			}(),
		},
		{
			name:  "leading password alias",
			input: "/password 12 --no-digits",
			want: func() password.Options {
				o := defaults()
				o.Length = 12
				o.Digits = false
				return o
			}(),
		},
		{
			name:  "last flag wins",
			input: "--symbols --no-symbols",
			want: func() password.Options {
				o := defaults()
				o.Symbols = false
				return o
			}(),
		},
		{
			name:  "negation then re-enable",
			input: "--no-uppercase --uppercase",
			want:  defaults(),
		},
		{
			name:    "unknown command",
			input:   "/generate 16",
			wantErr: ErrUnknownCommand,
		},
		{
			name:    "unknown option",
			input:   "16 --invalid",
			wantErr: ErrUnknownOption,
		},
		{
			name:    "non-numeric length",
			input:   "abc",
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, defaults())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
