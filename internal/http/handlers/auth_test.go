package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medixpro/medixpro/internal/auth"
	"github.com/medixpro/medixpro/internal/domain/user"
	"github.com/medixpro/medixpro/internal/http/handlers"
	"github.com/medixpro/medixpro/internal/repo/postgres"
	"github.com/medixpro/medixpro/internal/security"
)

// Fake user store implementing both handlers.UserReader and handlers.UserWriter

type fakeUserStore struct {
	getByEmailFn     func(ctx context.Context, email string) (user.User, error)
	getByIDFn        func(ctx context.Context, id string) (user.User, error)
	createFn         func(ctx context.Context, u user.User) error
	updateProfileFn  func(ctx context.Context, id, name, avatar string) (user.User, error)
	updatePasswordFn func(ctx context.Context, id, passwordHash string) error
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}

	return user.User{}, postgres.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}

	return user.User{}, postgres.ErrUserNotFound
}

func (f *fakeUserStore) Create(ctx context.Context, u user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}

	return nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id, name, avatar string) (user.User, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, id, name, avatar)
	}

	return user.User{}, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, passwordHash)
	}

	return nil
}

func testJWTManager() *auth.Manager {
	return auth.NewManager("test-secret-at-least-32-characters!!", 7*24*time.Hour)
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
	Error string    `json:"error"`
}

func TestLoginHandler(t *testing.T) {
	hash, err := security.HashPassword("correct-password")

	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	known := user.User{
		ID:           newUUID(),
		Name:         "Dr. Asha Rao",
		Email:        "asha@medix.example",
		PasswordHash: hash,
		Role:         "admin",
	}

	store := &fakeUserStore{
		getByEmailFn: func(ctx context.Context, email string) (user.User, error) {
			if email == known.Email {
				return known, nil
			}
			return user.User{}, postgres.ErrUserNotFound
		},
	}

	h := handlers.NewAuthHandler(store, store, testJWTManager())

	r := setupRouter(http.MethodPost, "/api/auth/login", h.Login)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		return w
	}

	t.Run("success", func(t *testing.T) {
		w := do(`{"email": "asha@medix.example", "password": "correct-password"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp loginResponse

		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v body=%s", err, w.Body.String())
		}

		if resp.Token == "" {
			t.Fatalf("expected a token in the response, body=%s", w.Body.String())
		}
		if resp.User.Email != known.Email {
			t.Fatalf("got user email %q, want %q", resp.User.Email, known.Email)
		}

		claims, err := testJWTManager().VerifyToken(resp.Token)

		if err != nil {
			t.Fatalf("issued token failed verification: %v", err)
		}
		if claims.UserID != known.ID || claims.Role != "admin" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})

	// unknown email and wrong password must be indistinguishable to the caller

	t.Run("unknown_email_and_wrong_password_look_identical", func(t *testing.T) {
		unknown := do(`{"email": "nobody@medix.example", "password": "correct-password"}`)
		wrongPass := do(`{"email": "asha@medix.example", "password": "wrong-password"}`)

		if unknown.Code != http.StatusUnauthorized {
			t.Fatalf("unknown email: got status %d, want %d", unknown.Code, http.StatusUnauthorized)
		}
		if wrongPass.Code != http.StatusUnauthorized {
			t.Fatalf("wrong password: got status %d, want %d", wrongPass.Code, http.StatusUnauthorized)
		}
		if unknown.Body.String() != wrongPass.Body.String() {
			t.Fatalf("failure bodies differ: %s vs %s", unknown.Body.String(), wrongPass.Body.String())
		}

		var resp loginResponse

		if err := json.Unmarshal(unknown.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Error != "Invalid credentials" {
			t.Fatalf("got error %q, want %q", resp.Error, "Invalid credentials")
		}
	})

	t.Run("malformed_email_rejected_before_lookup", func(t *testing.T) {
		w := do(`{"email": "not-an-email", "password": "whatever"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var created user.User

		store := &fakeUserStore{
			createFn: func(ctx context.Context, u user.User) error {
				created = u
				return nil
			},
		}

		h := handlers.NewAuthHandler(store, store, testJWTManager())

		r := setupRouter(http.MethodPost, "/api/auth/register", h.Register)

		body := `{"name": "New Nurse", "email": "nurse@medix.example", "password": "supersecret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
		}

		if created.Role != "user" {
			t.Fatalf("got role %q, want %q", created.Role, "user")
		}
		if created.PasswordHash == "" || created.PasswordHash == "supersecret1" {
			t.Fatalf("password was not hashed before storage")
		}
		if err := security.CheckPassword(created.PasswordHash, "supersecret1"); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}

		var resp loginResponse

		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Token == "" {
			t.Fatalf("expected a token in the response, body=%s", w.Body.String())
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		store := &fakeUserStore{
			createFn: func(ctx context.Context, u user.User) error {
				return postgres.ErrEmailAlreadyUsed
			},
		}

		h := handlers.NewAuthHandler(store, store, testJWTManager())

		r := setupRouter(http.MethodPost, "/api/auth/register", h.Register)

		body := `{"name": "New Nurse", "email": "nurse@medix.example", "password": "supersecret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
		}

		var resp loginResponse

		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.Error != "Email is already in use" {
			t.Fatalf("got error %q, want %q", resp.Error, "Email is already in use")
		}
	})

	t.Run("short_password_rejected", func(t *testing.T) {
		store := &fakeUserStore{}

		h := handlers.NewAuthHandler(store, store, testJWTManager())

		r := setupRouter(http.MethodPost, "/api/auth/register", h.Register)

		body := `{"name": "New Nurse", "email": "nurse@medix.example", "password": "short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})
}

func TestChangePasswordHandler_WrongOldPassword(t *testing.T) {
	hash, err := security.HashPassword("current-password")

	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	userID := newUUID()

	store := &fakeUserStore{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: userID, PasswordHash: hash}, nil
		},
		updatePasswordFn: func(ctx context.Context, id, passwordHash string) error {
			t.Fatalf("password must not be updated when the old one is wrong")
			return nil
		},
	}

	h := handlers.NewAuthHandler(store, store, testJWTManager())

	r := setupRouter(http.MethodPost, "/api/auth/change-password", h.ChangePassword)

	body := `{"oldPassword": "not-the-current-one", "newPassword": "brand-new-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/change-password", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusUnauthorized, w.Body.String())
	}
}
