package config_test

import (
	"errors"
	"testing"

	"github.com/Maks2425/telegram-bot-book-meet/internal/config"
)

func TestLoadRequiresToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"whitespace token", "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", tc.token)
			t.Setenv("OWNER_TELEGRAM_ID", "")

			_, err := config.Load("")
			if err == nil {
				t.Fatal("Load succeeded without a bot token")
			}
			if !errors.Is(err, config.ErrConfiguration) {
				t.Errorf("error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestLoadOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		present bool
	}{
		{"absent", "", 0, false},
		{"valid", "999", 999, true},
		{"valid with spaces", " 42 ", 42, true},
		{"negative id", "-100123", -100123, true},
		{"malformed treated as absent", "not-a-number", 0, false},
		{"float treated as absent", "99.5", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", "abc123")
			t.Setenv("OWNER_TELEGRAM_ID", tc.raw)

			cfg, err := config.Load("")
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if cfg.Telegram.Token != "abc123" {
				t.Errorf("Token = %q, want %q", cfg.Telegram.Token, "abc123")
			}
			if tc.present {
				if cfg.Telegram.OwnerID == nil {
					t.Fatal("OwnerID is nil, want value")
				}
				if *cfg.Telegram.OwnerID != tc.want {
					t.Errorf("OwnerID = %d, want %d", *cfg.Telegram.OwnerID, tc.want)
				}
			} else if cfg.Telegram.OwnerID != nil {
				t.Errorf("OwnerID = %d, want nil", *cfg.Telegram.OwnerID)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "abc123")
	t.Setenv("OWNER_TELEGRAM_ID", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, "info")
	}
	if cfg.Messages.Welcome == "" {
		t.Error("Messages.Welcome is empty")
	}
	if cfg.Scheduler.DigestSchedule == "" {
		t.Error("Scheduler.DigestSchedule is empty")
	}
	if cfg.Pricing.Deep != 80 {
		t.Errorf("Pricing.Deep = %v, want 80", cfg.Pricing.Deep)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	t.Setenv("BOT_TOKEN", "abc123")
	t.Setenv("OWNER_TELEGRAM_ID", "7")

	first, err := config.Load("")
	if err != nil {
		t.Fatalf("first Load returned error: %v", err)
	}
	second, err := config.Load("")
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}

	if first.Telegram.Token != second.Telegram.Token {
		t.Errorf("tokens differ: %q vs %q", first.Telegram.Token, second.Telegram.Token)
	}
	if *first.Telegram.OwnerID != *second.Telegram.OwnerID {
		t.Errorf("owner ids differ: %d vs %d", *first.Telegram.OwnerID, *second.Telegram.OwnerID)
	}
}
