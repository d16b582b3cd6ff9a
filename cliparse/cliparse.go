package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	DownvoteThreshold int
	SessionTTLHours   int
	BcryptCost        int
}

// SessionTTL returns the configured session lifetime. Zero means
// sessions never expire.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("genememetor", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Policy knobs
	fs.IntVar(&cfg.DownvoteThreshold, "downvote-threshold", 0, "Down-votes before a meme is removed")
	fs.IntVar(&cfg.SessionTTLHours, "session-ttl-hours", -1, "Session lifetime in hours (0 = never expire)")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor for password hashing")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DownvoteThreshold == 0 {
		if s := os.Getenv("DOWNVOTE_THRESHOLD"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid DOWNVOTE_THRESHOLD env variable")
			}
			cfg.DownvoteThreshold = n
		} else {
			cfg.DownvoteThreshold = 50 // default
		}
	}
	if cfg.DownvoteThreshold < 1 {
		return Config{}, errors.New("downvote threshold must be at least 1")
	}

	if cfg.SessionTTLHours < 0 {
		if s := os.Getenv("SESSION_TTL_HOURS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return Config{}, errors.New("invalid SESSION_TTL_HOURS env variable")
			}
			cfg.SessionTTLHours = n
		} else {
			cfg.SessionTTLHours = 0 // sessions never expire, matching the original service
		}
	}

	if cfg.BcryptCost == 0 {
		if s := os.Getenv("BCRYPT_COST"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid BCRYPT_COST env variable")
			}
			cfg.BcryptCost = n
		} else {
			cfg.BcryptCost = 10 // default, bcrypt.DefaultCost
		}
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, errors.New("bcrypt cost must be between 4 and 31")
	}

	return cfg, nil
}
