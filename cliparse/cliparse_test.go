// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DownvoteThreshold != 50 {
		t.Errorf("expected default threshold 50, got %d", cfg.DownvoteThreshold)
	}
	if cfg.SessionTTLHours != 0 {
		t.Errorf("expected default TTL 0, got %d", cfg.SessionTTLHours)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DOWNVOTE_THRESHOLD", "5")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-downvote-threshold", "3"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DownvoteThreshold != 3 {
		t.Errorf("CLI should override env: expected 3, got %d", cfg.DownvoteThreshold)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for missing database URL")
	}
}

func TestParseFlags_BadValues(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown driver", []string{"-d", "x", "-t", "oracle"}},
		{"zero threshold", []string{"-d", "x", "-downvote-threshold", "-1"}},
		{"bcrypt cost too low", []string{"-d", "x", "-bcrypt-cost", "2"}},
		{"bcrypt cost too high", []string{"-d", "x", "-bcrypt-cost", "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestSessionTTL(t *testing.T) {
	cfg := Config{SessionTTLHours: 2}
	if cfg.SessionTTL().Hours() != 2 {
		t.Errorf("expected 2h TTL, got %v", cfg.SessionTTL())
	}

	cfg = Config{SessionTTLHours: 0}
	if cfg.SessionTTL() != 0 {
		t.Errorf("expected zero TTL, got %v", cfg.SessionTTL())
	}
}
