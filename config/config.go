package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string
	Env  string

	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret      string
	JWTExpiryHours int

	// OIDC domain of the external identity provider (e.g. Auth0 tenant).
	AuthDomain string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
	LogJSON  bool
	LogFile  string

	CORSOrigins []string

	// Bootstrap admin credentials for environments without the identity
	// provider. The password is stored as a bcrypt hash, never plain.
	BootstrapEmail        string
	BootstrapPasswordHash string
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// Load reads configuration from the environment. godotenv has already
// populated it from .env when one exists.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 5)
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("USER_CACHE_TTL_SEC", 60)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	return &Config{
		Port:              v.GetString("PORT"),
		Env:               v.GetString("APP_ENV"),
		DatabaseURL:       v.GetString("DB_URL"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MIN")) * time.Minute,

		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		AuthDomain:     v.GetString("AUTH_DOMAIN"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		UserCacheTTL:  time.Duration(v.GetInt("USER_CACHE_TTL_SEC")) * time.Second,

		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),

		LogLevel: v.GetString("LOG_LEVEL"),
		LogJSON:  v.GetBool("LOG_JSON"),
		LogFile:  v.GetString("LOG_FILE"),

		CORSOrigins: strings.Split(v.GetString("CORS_ORIGINS"), ","),

		BootstrapEmail:        v.GetString("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapPasswordHash: v.GetString("BOOTSTRAP_ADMIN_PASSWORD_HASH"),
	}
}
