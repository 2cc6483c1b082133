package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi database berdasarkan environment.
// DB_DRIVER=mysql memakai DSN dari variabel DB_*, selain itu jatuh ke
// SQLite lokal supaya server tetap bisa jalan tanpa setup.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	if driver == "mysql" {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			user := getEnv("DB_USER", "root")
			pass := os.Getenv("DB_PASS")
			host := getEnv("DB_HOST", "127.0.0.1")
			port := getEnv("DB_PORT", "3306")
			name := getEnv("DB_NAME", "qr_dine")
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				user, pass, host, port, name)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := getEnv("DB_PATH", "qr_dine.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// PublicBaseURL adalah origin yang dipakai untuk payload QR code meja.
func PublicBaseURL() string {
	return getEnv("PUBLIC_BASE_URL", "http://localhost:8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
