package workflow

import (
	"context"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/apperr"
	"clinic-backend/pkg/utils"
)

// Auth mengurus registrasi dan autentikasi dokter.
// Identitas resmi ada di Firebase, tapi hash password juga disimpan lokal
// di tabel doctors (warisan skema lama).
type Auth struct {
	db        Database
	identity  Identity
	validate  *validator.Validate
	jwtSecret string
}

func NewAuth(db Database, identity Identity, jwtSecret string) *Auth {
	return &Auth{
		db:        db,
		identity:  identity,
		validate:  validator.New(),
		jwtSecret: jwtSecret,
	}
}

// LoginResult dikirim balik ke handler setelah login sukses.
type LoginResult struct {
	Token  string
	Doctor models.Doctor
}

func (a *Auth) isEmail(s string) bool {
	return a.validate.Var(s, "required,email") == nil
}

// Register mendaftarkan dokter baru: validasi input, cek duplikat email
// dan name di database, buat akun Firebase, lalu simpan row dokter.
// Catatan: kalau insert row gagal setelah akun Firebase terlanjur dibuat,
// akun eksternal itu tidak di-rollback.
func (a *Auth) Register(ctx context.Context, name, email, password string) error {
	if !a.isEmail(email) {
		return apperr.New(apperr.KindValidation, "Invalid email format")
	}
	if strings.TrimSpace(name) == "" {
		return apperr.New(apperr.KindValidation, "Name cannot be empty")
	}
	if len(password) < 8 {
		return apperr.New(apperr.KindValidation, "Password must be at least 8 characters")
	}

	var existing []models.Doctor
	if err := a.db.Select(ctx, &existing, "SELECT email FROM doctors WHERE email = ?", email); err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperr.New(apperr.KindConflict, "Email already registered")
	}

	existing = nil
	if err := a.db.Select(ctx, &existing, "SELECT name FROM doctors WHERE name = ?", name); err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperr.New(apperr.KindConflict, "Name already in use")
	}

	if err := a.identity.CreateAccount(ctx, email, password); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := a.db.Exec(ctx,
		"INSERT INTO doctors (name, email, password) VALUES (?, ?, ?)",
		name, email, hashed); err != nil {
		return err
	}
	return nil
}

// Login menerima email ATAU name di field login.
// Hash lokal yang jadi penentu sah/tidaknya password; sign-in ke Firebase
// tetap dicoba supaya sesi provider ikut hidup, tapi kegagalannya cuma
// dicatat di log — selama migrasi dua penyimpanan kredensial, database
// lokal yang kita anggap sumber kebenaran.
func (a *Auth) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	if strings.TrimSpace(login) == "" {
		return nil, apperr.New(apperr.KindValidation, "Login field is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, apperr.New(apperr.KindValidation, "Password is required")
	}

	query := "SELECT * FROM doctors WHERE name = ?"
	if a.isEmail(login) {
		query = "SELECT * FROM doctors WHERE email = ?"
	}

	var rows []models.Doctor
	if err := a.db.Select(ctx, &rows, query, login); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "User not found. Please check your username or email.")
	}
	doctor := rows[0]

	if !utils.CheckPassword(password, doctor.Password) {
		return nil, apperr.New(apperr.KindAuth, "Incorrect password. Please try again.")
	}

	if err := a.identity.VerifyCredentials(ctx, doctor.Email, password); err != nil {
		log.Printf("firebase sign-in for %s failed (local check passed): %v", doctor.Email, err)
	}

	// Hash ditulis ulang tiap login sukses. Passwordnya tidak berubah,
	// hanya salt-nya; dipertahankan sesuai perilaku lama.
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if _, err := a.db.Exec(ctx,
		"UPDATE doctors SET password = ? WHERE email = ?", hashed, doctor.Email); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(a.jwtSecret, doctor.ID, doctor.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Doctor: doctor}, nil
}

// ResetPassword mengirim email reset lewat Firebase.
// Database lokal tidak diubah sama sekali.
func (a *Auth) ResetPassword(ctx context.Context, email string) error {
	if !a.isEmail(email) {
		return apperr.New(apperr.KindValidation, "Invalid email")
	}

	var rows []models.Doctor
	if err := a.db.Select(ctx, &rows, "SELECT * FROM doctors WHERE email = ?", email); err != nil {
		return err
	}
	if len(rows) == 0 {
		return apperr.New(apperr.KindNotFound, "Email not registered")
	}

	return a.identity.SendPasswordReset(ctx, email)
}

// Logout menutup sesi provider yang sedang aktif.
func (a *Auth) Logout(ctx context.Context) error {
	if _, ok := a.identity.CurrentSession(); !ok {
		return apperr.New(apperr.KindAuth, "User is not logged in")
	}
	return a.identity.SignOut(ctx)
}
