package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds process-level settings read from the environment.
type Config struct {
	// DBPath overrides the default database location. Empty means the
	// XDG default resolved by the store.
	DBPath string

	// LogPath is the debug log file for the TUI. Empty disables logging.
	LogPath string

	// Sound enables the terminal bell cues.
	Sound bool

	// Timer is the blitz countdown used when the player never chose one.
	Timer int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	return Config{
		DBPath:  os.Getenv("NUMBERRUSH_DB"),
		LogPath: os.Getenv("NUMBERRUSH_LOG"),
		Sound:   envBoolOr("NUMBERRUSH_SOUND", true),
		Timer:   envIntOr("NUMBERRUSH_TIMER", 10),
	}
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "on", "true", "yes":
		return true
	case "0", "off", "false", "no":
		return false
	}
	log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	return def
}
