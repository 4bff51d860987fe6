package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"clinic-backend/pkg/apperr"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// Identity membungkus Firebase Authentication.
// Admin SDK dipakai untuk bikin akun dan revoke refresh token;
// verifikasi password dan email reset lewat Identity Toolkit REST API
// karena Admin SDK tidak punya sign-in dengan password.
type Identity struct {
	auth   *firebaseauth.Client
	apiKey string
	http   *http.Client

	// Sesi "user yang sedang login" disimpan di proses, meniru
	// perilaku auth.currentUser di client SDK.
	mu      sync.Mutex
	session *session
}

type session struct {
	Email   string
	LocalID string
	IDToken string
}

// NewIdentity menginisialisasi Firebase app dari file credential.
func NewIdentity(ctx context.Context, credentialsFile, apiKey string) (*Identity, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth client: %w", err)
	}

	return &Identity{
		auth:   client,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// CreateAccount mendaftarkan akun baru di Firebase.
func (i *Identity) CreateAccount(ctx context.Context, email, password string) error {
	params := (&firebaseauth.UserToCreate{}).Email(email).Password(password)
	if _, err := i.auth.CreateUser(ctx, params); err != nil {
		return apperr.Wrap(apperr.KindProvider, "Account already registered", err)
	}
	return nil
}

// VerifyCredentials melakukan sign-in email+password ke Firebase.
// Kalau berhasil, sesinya dicatat sebagai current session.
func (i *Identity) VerifyCredentials(ctx context.Context, email, password string) error {
	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var resp struct {
		IDToken string `json:"idToken"`
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := i.post(ctx, "accounts:signInWithPassword", payload, &resp); err != nil {
		return apperr.Wrap(apperr.KindAuth, "Account not registered", err)
	}

	i.mu.Lock()
	i.session = &session{Email: resp.Email, LocalID: resp.LocalID, IDToken: resp.IDToken}
	i.mu.Unlock()
	return nil
}

// SendPasswordReset meminta Firebase mengirim email reset password.
func (i *Identity) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	if err := i.post(ctx, "accounts:sendOobCode", payload, nil); err != nil {
		return apperr.Wrap(apperr.KindProvider, "Make sure the email you enter is correct", err)
	}
	return nil
}

// CurrentSession mengembalikan email user yang sedang login di proses ini.
func (i *Identity) CurrentSession() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.session == nil {
		return "", false
	}
	return i.session.Email, true
}

// SignOut me-revoke refresh token user aktif lalu menghapus sesi lokal.
func (i *Identity) SignOut(ctx context.Context) error {
	i.mu.Lock()
	s := i.session
	i.mu.Unlock()

	if s == nil {
		return apperr.New(apperr.KindAuth, "User is not logged in")
	}

	if err := i.auth.RevokeRefreshTokens(ctx, s.LocalID); err != nil {
		return apperr.Wrap(apperr.KindProvider, "Failed to log out", err)
	}

	i.mu.Lock()
	i.session = nil
	i.mu.Unlock()
	return nil
}

// post mengirim request JSON ke endpoint Identity Toolkit.
// Error yang keluar masih mentah; pemanggil yang menentukan Kind-nya.
func (i *Identity) post(ctx context.Context, action string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, action, i.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("identitytoolkit %s: %s", action, apiErr.Error.Message)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
