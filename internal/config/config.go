package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Pricing data is loaded
// separately (see pricing.go) because it is a structured table rather
// than a scalar value.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	PricingFile    string // optional path to a YAML pricing table; empty uses defaults
	SnapshotPrefix string // key prefix for persisted session snapshots
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),                    // environment (dev/test/prod)
		Port:           must("APP_PORT"),                   // port to bind the HTTP server
		PricingFile:    os.Getenv("PRICING_FILE"),          // pricing YAML path (empty allowed)
		SnapshotPrefix: getenv("SNAPSHOT_PREFIX", "padel"), // namespace for snapshot keys
	}
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default
// when it is unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
