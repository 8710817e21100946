package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	NATS       NATSConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Log        LogConfig
	Storage    StorageConfig
	Pagination PaginationConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Seed       SeedConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Env      string
	Timezone string // IANA zone used for every rendered date (America/Sao_Paulo)
	Locale   string // pt_BR or en, for relative date phrases
}

type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	LogLevel   string // silent, error, warn, info
}

// NATSConfig domain events, optional
type NATSConfig struct {
	URL     string // nats://localhost:4222
	Enabled bool
}

// RedisConfig token blacklist, optional
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type StorageConfig struct {
	Type     string // local, s3
	BasePath string // ./storage
	BaseURL  string // http://localhost:8080/files

	// S3-compatible storage (MinIO / R2)
	S3 S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

type PaginationConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

type CORSConfig struct {
	AllowOrigins string
}

// RateLimitConfig applies to the public auth endpoints only
type RateLimitConfig struct {
	AuthMax    int
	AuthWindow time.Duration
}

type SeedConfig struct {
	OnStart bool
}

func LoadConfig() (*Config, error) {
	// .env is optional, plain environment variables work too
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "Todolist API"),
			Port:     getEnv("APP_PORT", "8080"),
			Env:      getEnv("APP_ENV", "development"),
			Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
			Locale:   getEnv("APP_LOCALE", "pt_BR"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "todolist"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "todolist.db"),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			Enabled: getEnvBool("NATS_ENABLED", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			TTL:    time.Duration(getEnvInt("JWT_TTL_MINUTES", 60)) * time.Minute,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:     getEnv("STORAGE_TYPE", "local"),
			BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
			BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "todolist-exports"),
				UseSSL:    getEnvBool("S3_USE_SSL", false),
				Region:    getEnv("S3_REGION", "us-east-1"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Pagination: PaginationConfig{
			DefaultPerPage: getEnvInt("PAGINATION_PER_PAGE", 3),
			MaxPerPage:     getEnvInt("PAGINATION_MAX_PER_PAGE", 100),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		},
		RateLimit: RateLimitConfig{
			AuthMax:    getEnvInt("AUTH_RATE_LIMIT", 20),
			AuthWindow: time.Duration(getEnvInt("AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Seed: SeedConfig{
			OnStart: getEnvBool("SEED_ON_START", false),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(getEnv(key, ""))
	switch value {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// IsDevelopment reports whether APP_ENV is development
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
