package config

import (
	"os"
)

type Config struct {
	DatabaseURL string
	HTTPPort    string

	// Object store (S3 or any S3-compatible endpoint)
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3Bucket    string
	S3Endpoint  string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=password dbname=careers port=5432 sslmode=disable"),
		HTTPPort:    getEnv("HTTP_PORT", ":8080"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "resumes-upload"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"), // set for MinIO and friends
	}
}

// HasObjectStore reports whether S3 credentials were provided.
func (c *Config) HasObjectStore() bool {
	return c.S3AccessKey != "" && c.S3SecretKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
