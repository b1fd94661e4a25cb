package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string `mapstructure:"env"`      // current application environment (local, dev, prod etc)
	TelegramToken string `mapstructure:"-"`        // Telegram bot token loaded from environment
	VKGroupToken  string `mapstructure:"-"`        // VK group token loaded from environment
	QuizDir       string `mapstructure:"quiz_dir"` // directory with quiz question files
	Redis         Redis  `mapstructure:"redis"`    // session store configuration section
}

// Redis contains connection parameters for the session store.
type Redis struct {
	Addr     string `mapstructure:"addr"` // host:port of the Redis server
	Password string `mapstructure:"-"`    // password loaded from environment
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Local runs keep secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quiz_dir", "quiz-questions")
	v.SetDefault("redis.addr", "localhost:6379")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("vk_group_token", "VK_GROUP_TOKEN")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("quiz_dir", "QUIZ_DIR")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables. Each entry point
	// validates the token it actually needs.
	cfg.TelegramToken = v.GetString("telegram_bot_token")
	cfg.VKGroupToken = v.GetString("vk_group_token")
	cfg.Redis.Password = v.GetString("redis_password")

	return &cfg, nil
}

// RequireTelegram validates the configuration for the Telegram front-end.
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("%w: TELEGRAM_BOT_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}

// RequireVK validates the configuration for the VK front-end.
func (c *Config) RequireVK() error {
	if c.VKGroupToken == "" {
		return fmt.Errorf("%w: VK_GROUP_TOKEN", ErrMissingEnvironmentVariables)
	}
	return nil
}
