// tokengen mints client-identity tokens for the API. Clients presenting a
// token get their own rate-limit quota instead of sharing the per-IP one.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/token"
)

func main() {
	clientID := flag.String("client", "", "client identifier to embed in the token")
	expiry := flag.Duration("expiry", 0, "token lifetime (default: configured JWT expiry)")
	flag.Parse()

	if *clientID == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -client <id> [-expiry <duration>]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	lifetime := cfg.JWTExpiry
	if *expiry > 0 {
		lifetime = *expiry
	}

	t, err := token.Generate(*clientID, cfg.JWTSecret, lifetime)
	if err != nil {
		slog.Error("generating token", "error", err)
		os.Exit(1)
	}

	fmt.Println(t)
}
