package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"clinic-backend/pkg/apperr"
)

const publicURLBase = "https://storage.googleapis.com"

// ObjectStorage menyimpan dan menghapus gambar X-ray di Cloud Storage.
type ObjectStorage struct {
	client *storage.Client
	bucket string
}

func NewObjectStorage(client *storage.Client, bucket string) *ObjectStorage {
	return &ObjectStorage{client: client, bucket: bucket}
}

// Put mengunggah blob lalu mengembalikan URL publiknya.
// URL dirakit sendiri (bukan dari response storage), polanya {base}/{bucket}/{key}.
func (s *ObjectStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", apperr.Wrap(apperr.KindStorage, "Gagal mengunggah gambar ke Storage.", err)
	}
	if err := w.Close(); err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "Gagal mengunggah gambar ke Storage.", err)
	}

	return fmt.Sprintf("%s/%s/%s", publicURLBase, s.bucket, key), nil
}

// Delete menghapus blob. Object yang sudah tidak ada dianggap sukses
// supaya penghapusan record pasien tetap idempotent.
func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return apperr.Wrap(apperr.KindStorage, "Gagal menghapus gambar dari Storage.", err)
	}
	return nil
}

// ObjectKey membuat nama file unik untuk satu pasien.
// Satu skema dipakai bersama oleh create dan update biar tidak drift.
func ObjectKey(patientID, filename string) string {
	return fmt.Sprintf("%s-%d-%s", patientID, time.Now().UnixMilli(), filename)
}

// KeyFromURL mengambil nama blob dari URL publik (segmen path terakhir).
func KeyFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
