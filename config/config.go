package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Entry token signing. Rotating the secret invalidates every
	// unexpired token that is already in the field.
	EntryTokenSecret    string `mapstructure:"ENTRY_TOKEN_SECRET"`
	EntryTokenExpiryMin int    `mapstructure:"ENTRY_TOKEN_EXPIRY_MIN"`

	// Default open/close window used when a facility day has no
	// schedule and no special hours.
	DefaultOpenTime  string `mapstructure:"DEFAULT_OPEN_TIME"`
	DefaultCloseTime string `mapstructure:"DEFAULT_CLOSE_TIME"`
	SlotMinutes      int    `mapstructure:"SLOT_MINUTES"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisWorkerDB   int    `mapstructure:"REDIS_WORKER_DB"`
	ScheduleCacheDB int    `mapstructure:"REDIS_SCHEDULE_CACHE_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ENTRY_TOKEN_EXPIRY_MIN", 1440)
	viper.SetDefault("DEFAULT_OPEN_TIME", "06:00")
	viper.SetDefault("DEFAULT_CLOSE_TIME", "23:00")
	viper.SetDefault("SLOT_MINUTES", 60)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_WORKER_DB", 1)
	viper.SetDefault("REDIS_SCHEDULE_CACHE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.EntryTokenSecret == "" {
		log.Fatal("ENTRY_TOKEN_SECRET must be set")
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
