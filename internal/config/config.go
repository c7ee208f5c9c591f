package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DataSourceAuto  = "auto"
	DataSourceSheet = "sheet"
	DataSourceDemo  = "demo"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT" validate:"required,numeric"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT" validate:"gt=0"`
	LogLevel       string        `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	SheetURL       string        `mapstructure:"SHEET_URL" validate:"omitempty,url"`
	SheetTimeout   time.Duration `mapstructure:"SHEET_TIMEOUT" validate:"gt=0"`
	SheetMaxMB     int64         `mapstructure:"SHEET_MAX_MB" validate:"gt=0"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL" validate:"gte=0"`
	RedisURL       string        `mapstructure:"REDIS_URL"`
	WonStatuses    string        `mapstructure:"WON_STATUSES"`
	DataSource     string        `mapstructure:"DATA_SOURCE" validate:"oneof=auto sheet demo"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHEET_URL", "")
	v.SetDefault("SHEET_TIMEOUT", "30s")
	v.SetDefault("SHEET_MAX_MB", 20)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("WON_STATUSES", "implementado,vendido")
	v.SetDefault("DATA_SOURCE", DataSourceAuto)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.DataSource = strings.ToLower(strings.TrimSpace(cfg.DataSource))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WonStatusList splits WON_STATUSES on commas.
func (c Config) WonStatusList() []string {
	var out []string
	for _, s := range strings.Split(c.WonStatuses, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c Config) SheetMaxBytes() int64 {
	return c.SheetMaxMB << 20
}

func (c Config) CORSOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
