package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string
	ClientURL  string

	AdminEmail        string
	AdminPassword     string // legacy plaintext comparison
	AdminPasswordHash string // bcrypt hash, preferred when set
	JWTSecret         string

	// Google Sheets record store. Empty SheetID means local-only mode.
	GoogleServiceAccountEmail string
	GooglePrivateKey          string
	SheetID                   string

	// Email notifications.
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	// Portfolio image uploads.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	S3PublicURL        string
	UploadsDir         string

	Timezone string

	ReconcileDelay time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("PORT", "5000"),
		ClientURL:  getEnv("CLIENT_URL", "http://localhost:3000"),

		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),

		GoogleServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		// Private keys arrive from most env tooling with literal \n.
		GooglePrivateKey: strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n"),
		SheetID:          os.Getenv("GOOGLE_SHEET_ID"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:      getEnv("EMAIL_FROM", "info@barbershop.com"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Barbershop"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           os.Getenv("S3_BUCKET"),
		S3PublicURL:        os.Getenv("S3_PUBLIC_URL"),
		UploadsDir:         getEnv("UPLOADS_DIR", "uploads"),

		Timezone: os.Getenv("TIMEZONE"),

		ReconcileDelay: getDuration("RECONCILE_DELAY_MS", 200*time.Millisecond),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),
	}

	logPresence(cfg)
	return cfg
}

// logPresence mirrors the startup config dump operators rely on to
// see which integrations a deployment actually has.
func logPresence(cfg *Config) {
	present := func(v string) bool { return strings.TrimSpace(v) != "" }
	log.Printf("[config] admin=%v jwt=%v sheets=%v email=%v s3=%v env=%s",
		present(cfg.AdminEmail) && (present(cfg.AdminPassword) || present(cfg.AdminPasswordHash)),
		present(cfg.JWTSecret),
		cfg.SheetsConfigured(),
		present(cfg.SendGridAPIKey),
		present(cfg.S3Bucket),
		cfg.Env,
	)
}

// SheetsConfigured reports whether the remote record store can be
// reached. False is a supported mode, not an error.
func (c *Config) SheetsConfigured() bool {
	return c.SheetID != "" && c.GoogleServiceAccountEmail != "" && c.GooglePrivateKey != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
