// Package config loads and validates the application configuration from the
// process environment and an optional config.yaml file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/Maks2425/telegram-bot-book-meet/internal/pricing"
)

// ErrConfiguration marks fatal configuration problems. The process must not
// start the bot when Load returns an error wrapping it.
var ErrConfiguration = errors.New("configuration error")

// TelegramConfig holds the bot credentials and the optional operator identity.
type TelegramConfig struct {
	// Token authenticates against the Telegram Bot API. It is a secret and
	// is never logged.
	Token string `mapstructure:"token" validate:"required"`

	// OwnerID is the chat that receives booking notifications. Nil disables
	// notifications for the process lifetime.
	OwnerID *int64 `mapstructure:"-"`
}

// LoggerConfig controls log verbosity and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// SchedulerConfig controls the daily digest task.
type SchedulerConfig struct {
	DigestEnabled  bool   `mapstructure:"digest_enabled"`
	DigestSchedule string `mapstructure:"digest_schedule" validate:"required"`
}

// MessagesConfig holds the user-visible texts that operators may want to
// adjust without a rebuild.
type MessagesConfig struct {
	Welcome       string `mapstructure:"welcome" validate:"required"`
	UnknownAction string `mapstructure:"unknown_action" validate:"required"`
	GeneralError  string `mapstructure:"general_error" validate:"required"`
}

// Config is the immutable application configuration, constructed once at
// startup and passed by reference into every component.
type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Pricing   pricing.Rates   `mapstructure:"pricing"`
}

// Load reads configuration in order of precedence: environment variables
// (BOT_TOKEN, OWNER_TELEGRAM_ID), the config file, then defaults. A missing
// config file is fine; a missing token is not. A malformed OWNER_TELEGRAM_ID
// is logged and treated as absent because notifications are a convenience
// feature, not a requirement.
//
// Each call uses a fresh viper instance, so Load is idempotent for a given
// environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.BindEnv("telegram.token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := v.BindEnv("telegram.owner_id", "OWNER_TELEGRAM_ID"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine even for an explicit path: deployment
		// platforms may configure everything through the environment. A file
		// that exists but does not parse is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	cfg.Telegram.Token = strings.TrimSpace(v.GetString("telegram.token"))
	cfg.Telegram.OwnerID = parseOwnerID(v.GetString("telegram.owner_id"))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// parseOwnerID converts the raw OWNER_TELEGRAM_ID value to an id. Empty or
// malformed values disable notifications rather than failing startup.
func parseOwnerID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("OWNER_TELEGRAM_ID is not a valid integer, operator notifications disabled", "value", raw)
		return nil
	}
	return &id
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("scheduler.digest_enabled", true)
	v.SetDefault("scheduler.digest_schedule", "0 9 * * *")

	v.SetDefault("messages.welcome", "Вас вітає клінінгова компанія Чиста Оселя! \n\nОберіть опцію:")
	v.SetDefault("messages.unknown_action", "❌ Невідома дія.")
	v.SetDefault("messages.general_error", "❌ Виникла помилка. Спробуйте ще раз.")

	rates := pricing.DefaultRates()
	v.SetDefault("pricing.maintenance", rates.Maintenance)
	v.SetDefault("pricing.deep", rates.Deep)
	v.SetDefault("pricing.post_renovation", rates.PostRenovation)
	v.SetDefault("pricing.house_multiplier", rates.HouseMultiplier)
}
