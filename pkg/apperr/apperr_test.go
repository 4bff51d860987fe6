package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindAuth, http.StatusUnauthorized},
		{KindDatabase, http.StatusInternalServerError},
		{KindStorage, http.StatusInternalServerError},
		{KindProvider, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(New(tt.kind, "x")))
	}
}

func TestStatusCode_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("meledak")))
}

func TestMessage_NeverLeaksCause(t *testing.T) {
	err := Wrap(KindDatabase, "Terjadi kesalahan pada server.", errors.New("dial tcp: connection refused"))

	assert.Equal(t, "Terjadi kesalahan pada server.", Message(err))
	assert.NotContains(t, Message(err), "connection refused")
}

func TestMessage_UnknownError(t *testing.T) {
	assert.Equal(t, "Terjadi kesalahan pada server.", Message(errors.New("detail internal")))
}

func TestIs_ThroughWrapping(t *testing.T) {
	inner := Wrap(KindStorage, "Gagal mengunggah gambar ke Storage.", errors.New("timeout"))
	outer := fmt.Errorf("saat create pasien: %w", inner)

	assert.True(t, Is(outer, KindStorage))
	assert.False(t, Is(outer, KindDatabase))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("akar masalah")
	err := Wrap(KindAuth, "Incorrect password. Please try again.", cause)

	assert.ErrorIs(t, err, cause)
}
