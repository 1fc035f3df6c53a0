package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr                    string
	Environment             string
	DatabaseURL             string
	JWTSecret               string
	TokenTTL                time.Duration
	SeedAdminEmail          string
	SeedAdminPassword       string
	RunMigrations           bool
	RunSeed                 bool
	MigrationsDir           string
	MaxBodyBytes            int64
	LoginRatePerMinute      int
	ContactRatePerMinute    int
	DefaultLeaveBalance     int64
	PayslipScheduleInterval time.Duration
	MetricsEnabled          bool
	RedisURL                string
	CacheTTL                time.Duration
}

var defaults = map[string]any{
	"APP_ADDR":                  ":8080",
	"APP_ENV":                   "development",
	"DATABASE_URL":              "",
	"JWT_SECRET":                "",
	"TOKEN_TTL":                 12 * time.Hour,
	"SEED_ADMIN_EMAIL":          "",
	"SEED_ADMIN_PASSWORD":       "",
	"RUN_MIGRATIONS":            true,
	"RUN_SEED":                  true,
	"MIGRATIONS_DIR":            "migrations",
	"MAX_BODY_BYTES":            1048576,
	"LOGIN_RATE_PER_MINUTE":     10,
	"CONTACT_RATE_PER_MINUTE":   5,
	"DEFAULT_LEAVE_BALANCE":     24,
	"PAYSLIP_SCHEDULE_INTERVAL": time.Duration(0),
	"METRICS_ENABLED":           true,
	"REDIS_URL":                 "",
	"CACHE_TTL":                 5 * time.Minute,
}

// Load reads configuration from the environment, optionally layered over the
// YAML file named by CONFIG_PATH.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return Config{
		Addr:                    v.GetString("APP_ADDR"),
		Environment:             v.GetString("APP_ENV"),
		DatabaseURL:             v.GetString("DATABASE_URL"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		TokenTTL:                v.GetDuration("TOKEN_TTL"),
		SeedAdminEmail:          v.GetString("SEED_ADMIN_EMAIL"),
		SeedAdminPassword:       v.GetString("SEED_ADMIN_PASSWORD"),
		RunMigrations:           v.GetBool("RUN_MIGRATIONS"),
		RunSeed:                 v.GetBool("RUN_SEED"),
		MigrationsDir:           v.GetString("MIGRATIONS_DIR"),
		MaxBodyBytes:            v.GetInt64("MAX_BODY_BYTES"),
		LoginRatePerMinute:      v.GetInt("LOGIN_RATE_PER_MINUTE"),
		ContactRatePerMinute:    v.GetInt("CONTACT_RATE_PER_MINUTE"),
		DefaultLeaveBalance:     v.GetInt64("DEFAULT_LEAVE_BALANCE"),
		PayslipScheduleInterval: v.GetDuration("PAYSLIP_SCHEDULE_INTERVAL"),
		MetricsEnabled:          v.GetBool("METRICS_ENABLED"),
		RedisURL:                v.GetString("REDIS_URL"),
		CacheTTL:                v.GetDuration("CACHE_TTL"),
	}, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.LoginRatePerMinute <= 0 {
		return fmt.Errorf("LOGIN_RATE_PER_MINUTE must be positive")
	}
	if c.ContactRatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive")
	}
	if c.DefaultLeaveBalance < 0 {
		return fmt.Errorf("DEFAULT_LEAVE_BALANCE must not be negative")
	}
	if strings.TrimSpace(c.RedisURL) != "" && c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when REDIS_URL is set")
	}
	if c.PayslipScheduleInterval < 0 {
		return fmt.Errorf("PAYSLIP_SCHEDULE_INTERVAL must not be negative")
	}
	return nil
}
