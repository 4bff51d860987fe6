package workflow

import "context"

// Kontrak gateway yang dipakai workflow. Didefinisikan di sisi pemakai
// supaya test bisa pakai mock tanpa koneksi beneran.

type Database interface {
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) (int64, error)
}

type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type Identity interface {
	CreateAccount(ctx context.Context, email, password string) error
	VerifyCredentials(ctx context.Context, email, password string) error
	SendPasswordReset(ctx context.Context, email string) error
	CurrentSession() (string, bool)
	SignOut(ctx context.Context) error
}
