package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	JWTSecret      string
	AllowedOrigins []string

	// Bootstrap admin, created at startup if absent
	AdminEmail    string
	AdminPassword string

	// Uploads
	UploadDir   string
	MaxUploadMB int64

	// Optional S3 storage backend; disk is used when Bucket is empty
	S3Bucket      string
	S3Region      string
	S3AccessKeyID string
	S3SecretKey   string

	// Optional SMTP for best-effort contact notifications
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	NotifyEmail  string
}

func Load() (*Config, error) {
	maxMB := int64(10)
	if v := getEnv("MAX_UPLOAD_MB", "10"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxMB = n
		}
	}
	smtpPort := 587
	if v := getEnv("SMTP_PORT", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			smtpPort = n
		}
	}

	origins := []string{}
	for _, o := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("MONGODB_DB", "careerguard"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		AllowedOrigins: origins,
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@careerguard.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:    maxMB,
		S3Bucket:       getEnv("AWS_S3_BUCKET", ""),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),
		S3AccessKeyID:  getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       smtpPort,
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		NotifyEmail:    getEnv("NOTIFY_EMAIL", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
