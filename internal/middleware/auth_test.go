package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("test-key")

func signToken(t *testing.T, key []byte, subject string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{
			name:         "no header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "not bearer",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			header:       "Bearer not.a.jwt",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong key",
			header:       "Bearer " + signTokenWithKey([]byte("other-key"), "u1"),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "valid token",
			header:       "", // filled in below
			expectedCode: http.StatusOK,
			expectedUser: "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := tt.header
			if tt.expectedCode == http.StatusOK {
				header = "Bearer " + signToken(t, testKey, tt.expectedUser, time.Hour)
			}

			var gotUser string
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/bentoboxes/my", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}

			BearerAuth(testKey)(inner).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK && gotUser != tt.expectedUser {
				t.Errorf("expected user %q in context, got %q", tt.expectedUser, gotUser)
			}
		})
	}
}

func TestBearerAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testKey, "u1", -time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	called := false
	BearerAuth(testKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized || called {
		t.Errorf("expired token must be rejected: code=%d called=%v", rec.Code, called)
	}
}

func signTokenWithKey(key []byte, subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	return token
}
