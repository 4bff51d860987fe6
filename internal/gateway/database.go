package gateway

import (
	"context"

	"gorm.io/gorm"

	"clinic-backend/pkg/apperr"
)

// Database menjalankan SQL berparameter ke MySQL.
// Semua error driver dibungkus jadi KindDatabase; urusan "0 rows = not found"
// diserahkan ke pemanggil, bukan dianggap error di sini.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// Select menjalankan query baca dan scan hasilnya ke dest
// (pointer ke struct atau slice of struct).
func (g *Database) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return apperr.Wrap(apperr.KindDatabase, "Terjadi kesalahan pada server.", err)
	}
	return nil
}

// Exec menjalankan statement tulis dan mengembalikan jumlah row yang berubah.
func (g *Database) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result := g.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, apperr.Wrap(apperr.KindDatabase, "Terjadi kesalahan pada server.", result.Error)
	}
	return result.RowsAffected, nil
}
