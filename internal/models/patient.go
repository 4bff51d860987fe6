package models

import "time"

// Patient merepresentasikan tabel 'patients'.
// ID diisi dari client (nomor rekam medis), bukan auto increment.
// XrayImageURL nullable: baru terisi setelah upload gambar selesai.
type Patient struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Age          int       `gorm:"not null" json:"age"`
	Gender       string    `gorm:"type:enum('laki-laki','perempuan')" json:"gender"`
	Address      string    `gorm:"type:text" json:"address"`
	Email        string    `gorm:"size:100" json:"email"`
	Komplikasi   *string   `gorm:"type:text" json:"komplikasi"`
	XrayImageURL *string   `gorm:"size:512" json:"xray_image_url"`
	CreatedAt    time.Time `json:"created_at"`
	// Nama kolom mengikuti skema lama (tanpa 'd'), jangan diganti.
	UpdateAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

// PatientInput menampung field text dari form multipart.
// Age dikirim sebagai string oleh form, di-parse di handler.
type PatientInput struct {
	ID            string
	Name          string
	Age           int
	Gender        string
	Address       string
	Email         string
	Complications string
}
