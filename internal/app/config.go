package app

import (
	"os"

	"github.com/priyanshu-101/cb-app-user/internal/shared/connection"
)

type Config struct {
	Port string
	DB   connection.DBConfig

	RedisAddr   string
	KafkaBroker string

	UploadDir string
	S3Bucket  string
	AWSRegion string

	SlackToken   string
	SlackChannel string
}

// LoadConfig reads the process environment. Binaries call godotenv.Load
// first so a local .env file fills the gaps.
func LoadConfig() Config {
	return Config{
		Port: getenv("PORT", "3000"),
		DB: connection.DBConfig{
			Driver:   getenv("DB_DRIVER", "mysql"),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		UploadDir:    getenv("UPLOAD_DIR", "uploads"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		SlackToken:   os.Getenv("SLACK_TOKEN"),
		SlackChannel: os.Getenv("SLACK_CHANNEL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
