package middlewares_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/medixpro/medixpro/internal/auth"
	"github.com/medixpro/medixpro/internal/http/middlewares"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	verifyFn func(token string) (*auth.Claims, error)
}

func (f *fakeVerifier) VerifyToken(token string) (*auth.Claims, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}

	return nil, auth.ErrTokenInvalid
}

// protectedRouter mounts RequireAuth in front of a handler that echoes the
// identity it finds on the context.
func protectedRouter(v middlewares.TokenVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	mw := middlewares.NewAuthMiddleware(v)

	chain := append([]gin.HandlerFunc{mw.RequireAuth()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(middlewares.CtxUserID),
			"email":  c.GetString(middlewares.CtxEmail),
			"role":   c.GetString(middlewares.CtxRole),
		})
	})

	r.GET("/protected", chain...)

	return r
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("failed to unmarshal error body: %v body=%s", err, body)
	}

	return resp.Error
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifyFn   func(token string) (*auth.Claims, error)
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing_header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing or invalid Authorization header",
		},
		{
			name:       "not_a_bearer_scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing or invalid Authorization header",
		},
		{
			name:       "bearer_with_empty_token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing or invalid Authorization header",
		},
		{
			name:       "expired_token_gets_a_distinct_message",
			authHeader: "Bearer some.jwt.token",
			verifyFn: func(token string) (*auth.Claims, error) {
				return nil, fmt.Errorf("verify: %w", auth.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Token expired",
		},
		{
			name:       "tampered_token",
			authHeader: "Bearer some.jwt.token",
			verifyFn: func(token string) (*auth.Claims, error) {
				return nil, auth.ErrTokenInvalid
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			r := protectedRouter(&fakeVerifier{verifyFn: tt.verifyFn})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)

			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if got := errorMessage(t, w.Body.Bytes()); got != tt.wantError {
				t.Fatalf("got error %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestRequireAuth_SetsIdentityOnContext(t *testing.T) {
	v := &fakeVerifier{
		verifyFn: func(token string) (*auth.Claims, error) {
			if token != "valid.jwt.token" {
				return nil, auth.ErrTokenInvalid
			}

			return &auth.Claims{
				UserID: "user-1",
				Email:  "asha@medix.example",
				Role:   "admin",
			}, nil
		},
	}

	r := protectedRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.UserID != "user-1" || resp.Email != "asha@medix.example" || resp.Role != "admin" {
		t.Fatalf("unexpected identity on context: %+v", resp)
	}
}

func TestRequireRole(t *testing.T) {
	claimsFor := func(role string) func(token string) (*auth.Claims, error) {
		return func(token string) (*auth.Claims, error) {
			return &auth.Claims{UserID: "user-1", Email: "x@medix.example", Role: role}, nil
		}
	}

	t.Run("admin_passes", func(t *testing.T) {
		v := &fakeVerifier{verifyFn: claimsFor("admin")}
		mw := middlewares.NewAuthMiddleware(v)

		r := protectedRouter(v, mw.RequireRole("admin"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid.jwt.token")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("non_admin_is_forbidden", func(t *testing.T) {
		v := &fakeVerifier{verifyFn: claimsFor("user")}
		mw := middlewares.NewAuthMiddleware(v)

		r := protectedRouter(v, mw.RequireRole("admin"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid.jwt.token")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusForbidden, w.Body.String())
		}
	})

	t.Run("missing_identity_is_unauthorized", func(t *testing.T) {
		mw := middlewares.NewAuthMiddleware(&fakeVerifier{})

		r := gin.New()
		r.GET("/admin", mw.RequireRole("admin"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusUnauthorized, w.Body.String())
		}
	})
}
