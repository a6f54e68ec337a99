package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	JWTSecret  string
	ServerPort string
	Timezone   string

	MigrationTimeout time.Duration
	CORSOrigins      []string

	RedisURL string
	CacheTTL time.Duration

	BackupBucket   string
	BackupRegion   string
	BackupPrefix   string
	BackupEndpoint string
	AWSAccessKey   string
	AWSSecretKey   string
}

// Load reads the process environment. A .env file in the working directory,
// when present, fills variables that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("DATABASE_PATH", "/tmp/db/programari.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8000"),
		Timezone:   getEnv("TIMEZONE", "Europe/Bucharest"),

		MigrationTimeout: getDuration("MIGRATION_TIMEOUT", 60*time.Second),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")),

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: getDuration("CACHE_TTL", 5*time.Minute),

		BackupBucket:   os.Getenv("BACKUP_S3_BUCKET"),
		BackupRegion:   getEnv("BACKUP_S3_REGION", "eu-central-1"),
		BackupPrefix:   getEnv("BACKUP_S3_PREFIX", "programari/"),
		BackupEndpoint: os.Getenv("BACKUP_S3_ENDPOINT"),
		AWSAccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) BackupEnabled() bool {
	return c.BackupBucket != ""
}
