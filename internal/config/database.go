package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"clinic-backend/internal/models"
)

// ConnectDB membuka koneksi MySQL lewat GORM dan mengatur connection pool.
// Kapasitas pool dibatasi 10 koneksi, sama seperti konfigurasi lama.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)

	// Migrasi tabel doctors & patients kalau belum ada
	if err := db.AutoMigrate(&models.Doctor{}, &models.Patient{}); err != nil {
		return nil, err
	}

	log.Println("Connected to the database")
	return db, nil
}
