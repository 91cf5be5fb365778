// Package config loads the process-wide configuration from the environment.
// It is read exactly once in main and handed to constructors explicitly;
// no other package reads environment variables.
package config

import "os"

// Config holds runtime settings for the auth backend.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// AppEnv controls deployment-mode behavior such as the Secure cookie
	// attribute. Anything other than "production" is treated as development.
	AppEnv string

	// AccessTokenSecret signs short-lived access tokens.
	AccessTokenSecret string
	// RefreshTokenSecret signs long-lived refresh tokens.
	// It must differ from AccessTokenSecret so that a token of one kind
	// never verifies as the other.
	RefreshTokenSecret string

	// Database settings.
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RunMigrations bool

	// Redis settings. Empty RedisHost disables the profile cache.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Object storage settings for avatar uploads.
	// Empty S3Bucket disables avatar uploads entirely.
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

// Load populates a Config from environment variables, applying development
// defaults where a value is unset.
func Load() *Config {
	return &Config{
		Addr:               getenv("ADDR", ":8080"),
		AppEnv:             getenv("APP_ENV", "development"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		DBHost:             getenv("DB_HOST", "localhost"),
		DBPort:             getenv("DB_PORT", "5432"),
		DBUser:             getenv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME", "auth"),
		RunMigrations:      os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:          os.Getenv("REDIS_HOST"),
		RedisPort:          getenv("REDIS_PORT", "6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		S3Region:           getenv("S3_REGION", "us-east-1"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3AccessKey:        os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:        os.Getenv("S3_SECRET_KEY"),
	}
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
