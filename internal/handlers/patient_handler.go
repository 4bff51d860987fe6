package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/models"
	"clinic-backend/internal/workflow"
	"clinic-backend/pkg/apperr"
	"clinic-backend/pkg/utils"
)

// MaxImageSize membatasi ukuran file X-ray yang boleh diupload (10MB).
const MaxImageSize = 10 * 1024 * 1024

type PatientHandler struct {
	patients *workflow.Patient
}

func NewPatientHandler(patients *workflow.Patient) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// readImage membaca field file "image" dari form multipart ke memory.
// File yang tidak ada mengembalikan (nil, nil); kehadirannya wajib atau
// tidak diputuskan oleh workflow.
func readImage(c *gin.Context) (*workflow.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.KindValidation, "Gambar tidak bisa dibaca", err)
	}

	if fileHeader.Size > MaxImageSize {
		return nil, apperr.New(apperr.KindValidation, "Ukuran gambar maksimal 10MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Gambar tidak bisa dibaca", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Gambar tidak bisa dibaca", err)
	}
	if len(data) > MaxImageSize {
		return nil, apperr.New(apperr.KindValidation, "Ukuran gambar maksimal 10MB")
	}

	return &workflow.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentTypeOf(fileHeader),
		Data:        data,
	}, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func patientInputFromForm(c *gin.Context) models.PatientInput {
	return models.PatientInput{
		ID:            c.PostForm("id"),
		Name:          c.PostForm("name"),
		Age:           utils.StringToInt(c.PostForm("age")),
		Gender:        c.PostForm("gender"),
		Address:       c.PostForm("address"),
		Email:         c.PostForm("email"),
		Complications: c.PostForm("complications"),
	}
}

// CREATE pasien baru + upload X-ray
func (h *PatientHandler) Create(c *gin.Context) {
	input := patientInputFromForm(c)

	image, err := readImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.patients.Create(c.Request.Context(), input, image); err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Data pasien dan gambar berhasil disimpan.", nil)
}

// GET satu pasien
func (h *PatientHandler) Get(c *gin.Context) {
	patient, err := h.patients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	// Kontrak lama: response-nya {"patient": {...}}, bukan envelope standar
	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UPDATE data demografis + optional retake gambar
func (h *PatientHandler) Update(c *gin.Context) {
	input := patientInputFromForm(c)

	image, err := readImage(c)
	if err != nil {
		respondError(c, err)
		return
	}

	publicURL, err := h.patients.Update(c.Request.Context(), c.Param("id"), input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	if publicURL != "" {
		utils.APIResponse(c, http.StatusOK, true, "Patient data and image updated successfully", gin.H{
			"publicUrl": publicURL,
		})
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient data updated successfully", nil)
}

// DELETE pasien + blob-nya
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient data deleted successfully", nil)
}
