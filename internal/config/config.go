package config

import (
	"fmt"
	"os"
)

// Config menampung semua konfigurasi aplikasi dari environment variable.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBDatabase string

	FirebaseAPIKey  string
	CredentialsFile string
	StorageBucket   string

	JWTSecret string
}

// Load membaca environment variable dengan nilai default.
// Panggil godotenv.Load() dulu di main sebelum fungsi ini.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "4001"),

		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBDatabase: getEnv("DB_DATABASE", "clinic"),

		FirebaseAPIKey:  getEnv("FIREBASE_API_KEY", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", "./serviceKey.json"),
		StorageBucket:   getEnv("STORAGE_BUCKET", "xray-images-patient"),

		JWTSecret: getEnv("JWT_SECRET", "rahasia_dapur_klinik"), // Fallback kalau .env lupa diisi
	}
}

// DSN merakit connection string MySQL.
// timeout=30s mengikuti connect timeout pool yang lama.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=30s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBDatabase)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
