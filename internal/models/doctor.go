package models

import "time"

// Doctor merepresentasikan tabel 'doctors' di database.
// Name dipakai juga sebagai username alternatif waktu login, jadi harus unik.
type Doctor struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // hash bcrypt, jangan pernah dikirim ke frontend
	CreatedAt time.Time `json:"created_at"`
}

// Struct untuk menangkap input Register
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Struct untuk menangkap input Login.
// Login boleh diisi email ATAU name, dibedakan di workflow.
type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Struct untuk menangkap input Reset Password
type ResetPasswordInput struct {
	Email string `json:"email" binding:"required"`
}
