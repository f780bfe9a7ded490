package config

import (
	"log/slog"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/lumberlib/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every env file that exists. Variables already present
// in the process environment are not overwritten.
func loadEnvFiles() {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(path))
		}
	}
}
