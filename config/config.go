package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Server struct {
		Port          string `mapstructure:"port"`
		MigrationsDir string `mapstructure:"migrations_dir"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Mail struct {
		// Provider is either "ses" or "log".
		Provider string `mapstructure:"provider"`
		From     string `mapstructure:"from"`
		Region   string `mapstructure:"region"`
	} `mapstructure:"mail"`
	Admin struct {
		Name     string `mapstructure:"name"`
		Email    string `mapstructure:"email"`
		Password string `mapstructure:"password"`
	} `mapstructure:"admin"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "smartcity")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.migrations_dir", "db/migrations")

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.ttl", 24*time.Hour)

	v.SetDefault("mail.provider", "log")
	v.SetDefault("mail.from", "no-reply@smartcity-portal.ng")
	v.SetDefault("mail.region", "eu-west-1")

	v.SetDefault("admin.name", "Portal Administrator")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")

	v.SetDefault("log.level", "info")
}

// Load reads config.yml from path (when present), a sibling .env file and the
// environment. Environment variables use the SMARTCITY_ prefix with dots
// replaced by underscores, e.g. SMARTCITY_DATABASE_HOST.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path + "/.env")

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("smartcity")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.JWT.SecretKey == "" {
		return Config{}, fmt.Errorf("jwt.secret_key must be set")
	}
	if cfg.Mail.Provider != "ses" && cfg.Mail.Provider != "log" {
		return Config{}, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
	return cfg, nil
}

// LoadConfig loads the configuration into AppConfig and panics on failure.
func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	AppConfig = cfg
}
