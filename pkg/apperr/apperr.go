package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind mengelompokkan error berdasarkan penyebabnya, biar handler
// tinggal mapping ke status code tanpa perlu tahu detail internal.
type Kind int

const (
	KindValidation Kind = iota // input salah / kurang
	KindConflict               // data duplikat (id/email/name)
	KindNotFound               // row tidak ditemukan
	KindAuth                   // kredensial salah / tidak ada sesi
	KindDatabase               // kegagalan di sisi database
	KindStorage                // kegagalan di sisi object storage
	KindProvider               // kegagalan backend identity provider (bukan salah kredensial)
)

// Error membawa kategori + pesan yang aman ditampilkan ke user.
// Err aslinya disimpan untuk logging di server, JANGAN dikirim ke client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf mengambil Kind dari error. Error yang tidak dikenal dianggap -1.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return -1
}

// Is membantu pengecekan kategori di workflow dan test.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode memetakan Kind ke HTTP status sesuai kontrak API.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		// Database, Storage, dan error tak terduga lainnya
		return http.StatusInternalServerError
	}
}

// Message mengembalikan pesan yang aman untuk client. Error di luar
// *Error tidak boleh bocor detailnya.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Terjadi kesalahan pada server."
}
