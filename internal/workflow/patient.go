package workflow

import (
	"context"
	"log"
	"strings"

	"clinic-backend/internal/gateway"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/apperr"
)

var validGenders = []string{"laki-laki", "perempuan"}

// ImageUpload membawa file X-ray yang sudah dibaca ke memory oleh handler.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Patient mengurus CRUD record pasien plus sinkronisasi gambar X-ray:
// row dulu, upload blob, baru URL-nya ditulis balik ke row.
type Patient struct {
	db      Database
	storage Storage
}

func NewPatient(db Database, storage Storage) *Patient {
	return &Patient{db: db, storage: storage}
}

func validatePatient(in models.PatientInput, image *ImageUpload) error {
	if in.ID == "" || in.Name == "" || in.Age == 0 || in.Gender == "" || in.Address == "" || in.Email == "" {
		return apperr.New(apperr.KindValidation, "Required fields missing")
	}
	if in.Age <= 0 {
		return apperr.New(apperr.KindValidation, "Invalid age")
	}
	gender := strings.ToLower(in.Gender)
	valid := false
	for _, g := range validGenders {
		if gender == g {
			valid = true
			break
		}
	}
	if !valid {
		return apperr.New(apperr.KindValidation, `Invalid gender. Must be "laki-laki" or "perempuan".`)
	}
	if !strings.Contains(in.Email, "@") {
		return apperr.New(apperr.KindValidation, `Invalid email. Must contain "@".`)
	}
	if image == nil || len(image.Data) == 0 {
		return apperr.New(apperr.KindValidation, "Required fields missing")
	}
	return nil
}

// Create menyimpan pasien baru lalu mengunggah gambar X-ray-nya.
// Kalau upload gagal, row yang baru di-insert dihapus lagi supaya
// operasi gagal utuh, bukan meninggalkan pasien tanpa gambar.
func (p *Patient) Create(ctx context.Context, in models.PatientInput, image *ImageUpload) (string, error) {
	if err := validatePatient(in, image); err != nil {
		return "", err
	}

	var existing []models.Patient
	if err := p.db.Select(ctx, &existing, "SELECT id FROM patients WHERE id = ?", in.ID); err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", apperr.New(apperr.KindConflict, "ID pasien sudah ada di database.")
	}

	var komplikasi interface{}
	if in.Complications != "" {
		komplikasi = in.Complications
	}
	if _, err := p.db.Exec(ctx,
		"INSERT INTO patients (id, name, age, gender, email, address, komplikasi) VALUES (?, ?, ?, ?, ?, ?, ?)",
		in.ID, in.Name, in.Age, in.Gender, in.Email, in.Address, komplikasi); err != nil {
		return "", err
	}

	key := gateway.ObjectKey(in.ID, image.Filename)
	publicURL, err := p.storage.Put(ctx, key, image.Data, image.ContentType)
	if err != nil {
		// Rollback row-nya; kalau ini pun gagal cukup dicatat,
		// error utamanya tetap kegagalan upload.
		if _, delErr := p.db.Exec(ctx, "DELETE FROM patients WHERE id = ?", in.ID); delErr != nil {
			log.Printf("rollback pasien %s gagal: %v", in.ID, delErr)
		}
		return "", err
	}

	affected, err := p.db.Exec(ctx,
		"UPDATE patients SET xray_image_url = ? WHERE id = ?", publicURL, in.ID)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", apperr.New(apperr.KindNotFound, "Patient ID tidak ditemukan.")
	}

	return publicURL, nil
}

// Get mengambil satu pasien dengan projection kolom yang tetap.
func (p *Patient) Get(ctx context.Context, id string) (*models.Patient, error) {
	if id == "" {
		return nil, apperr.New(apperr.KindValidation, "Patient ID is required")
	}

	var rows []models.Patient
	err := p.db.Select(ctx, &rows,
		"SELECT id, name, age, gender, address, email, komplikasi, xray_image_url, created_at, update_at FROM patients WHERE id = ?",
		id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Patient not found")
	}
	return &rows[0], nil
}

// Update menulis ulang data demografis, lalu kalau ada gambar baru (retake)
// gambar diunggah dengan key baru dan URL-nya menggantikan yang lama.
// Blob lama sengaja dibiarkan di bucket (perilaku lama yang dipertahankan).
func (p *Patient) Update(ctx context.Context, id string, in models.PatientInput, image *ImageUpload) (string, error) {
	if id == "" {
		return "", apperr.New(apperr.KindValidation, "Patient ID is required")
	}

	affected, err := p.db.Exec(ctx,
		"UPDATE patients SET age = ?, gender = ?, address = ?, email = ? WHERE id = ?",
		in.Age, in.Gender, in.Address, in.Email, id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", apperr.New(apperr.KindNotFound, "Patient not found")
	}

	if image == nil {
		return "", nil
	}

	key := gateway.ObjectKey(id, image.Filename)
	publicURL, err := p.storage.Put(ctx, key, image.Data, image.ContentType)
	if err != nil {
		return "", err
	}

	affected, err = p.db.Exec(ctx,
		"UPDATE patients SET xray_image_url = ? WHERE id = ?", publicURL, id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", apperr.New(apperr.KindNotFound, "Patient ID not found for image update")
	}

	return publicURL, nil
}

// Delete menghapus blob (kalau ada) lalu row-nya.
// Menghapus id yang tidak ada tetap dianggap sukses.
func (p *Patient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.New(apperr.KindValidation, "Patient ID is required")
	}

	var rows []struct {
		XrayImageURL *string
	}
	if err := p.db.Select(ctx, &rows,
		"SELECT xray_image_url FROM patients WHERE id = ?", id); err != nil {
		return err
	}

	if len(rows) > 0 && rows[0].XrayImageURL != nil && *rows[0].XrayImageURL != "" {
		key := gateway.KeyFromURL(*rows[0].XrayImageURL)
		// Best effort: blob yang gagal terhapus tidak menggagalkan
		// penghapusan record-nya.
		if err := p.storage.Delete(ctx, key); err != nil {
			log.Printf("gagal menghapus blob %s: %v", key, err)
		}
	}

	if _, err := p.db.Exec(ctx, "DELETE FROM patients WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
