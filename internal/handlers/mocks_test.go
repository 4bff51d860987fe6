package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock gateway untuk test handler: router dipasang dengan workflow asli
// di atas mock ini, jadi mapping status code ikut teruji end-to-end.

type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	callArgs := append([]interface{}{ctx, dest, query}, args...)
	res := m.Called(callArgs...)
	return res.Error(0)
}

func (m *MockDatabase) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	callArgs := append([]interface{}{ctx, query}, args...)
	res := m.Called(callArgs...)
	return res.Get(0).(int64), res.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	res := m.Called(ctx, key, data, contentType)
	return res.String(0), res.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	res := m.Called(ctx, key)
	return res.Error(0)
}

type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) CreateAccount(ctx context.Context, email, password string) error {
	res := m.Called(ctx, email, password)
	return res.Error(0)
}

func (m *MockIdentity) VerifyCredentials(ctx context.Context, email, password string) error {
	res := m.Called(ctx, email, password)
	return res.Error(0)
}

func (m *MockIdentity) SendPasswordReset(ctx context.Context, email string) error {
	res := m.Called(ctx, email)
	return res.Error(0)
}

func (m *MockIdentity) CurrentSession() (string, bool) {
	res := m.Called()
	return res.String(0), res.Bool(1)
}

func (m *MockIdentity) SignOut(ctx context.Context) error {
	res := m.Called(ctx)
	return res.Error(0)
}
