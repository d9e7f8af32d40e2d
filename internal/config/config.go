// Package config assembles runtime configuration from defaults, an
// optional TOML file, and FLOORGATE_* environment overrides, in that
// order. Unparsable values fall back to the previous layer rather than
// failing startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Env selects runtime behavior: "dev" seeds demo roster files when
	// none exist, "prod" never writes data it was not given.
	Env string `toml:"env"`

	// Roster files (legacy flat format).
	UsersFile  string `toml:"users_file"`
	AdminsFile string `toml:"admins_file"`
	FloorsFile string `toml:"floors_file"`

	// DBPath is the audit journal database. Empty disables the journal
	// and keeps access history in memory only.
	DBPath string `toml:"db_path"`
}

func defaults() Config {
	return Config{
		Env:        "dev",
		UsersFile:  "./data/users.csv",
		AdminsFile: "./data/admins.csv",
		FloorsFile: "./data/floors.csv",
		DBPath:     "./data/floorgate.db",
	}
}

// Load builds the effective configuration. The TOML file is taken from
// FLOORGATE_CONFIG when set, otherwise ./floorgate.toml if present.
// A missing file is fine; a malformed one is an error.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("FLOORGATE_CONFIG")
	explicit := path != ""
	if path == "" {
		path = "./floorgate.toml"
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Env != "dev" && cfg.Env != "prod" {
		// fail-soft: treat unknown as dev
		cfg.Env = "dev"
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = strings.ToLower(getenvDefault("FLOORGATE_ENV", cfg.Env))
	cfg.UsersFile = getenvDefault("FLOORGATE_USERS_FILE", cfg.UsersFile)
	cfg.AdminsFile = getenvDefault("FLOORGATE_ADMINS_FILE", cfg.AdminsFile)
	cfg.FloorsFile = getenvDefault("FLOORGATE_FLOORS_FILE", cfg.FloorsFile)
	if v, ok := os.LookupEnv("FLOORGATE_DB_PATH"); ok {
		// Explicitly empty disables the journal.
		cfg.DBPath = strings.TrimSpace(v)
	}
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
