package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civicalert/citizen-services/internal/authn"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestCORS_SetsHeadersOnEveryResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	w := httptest.NewRecorder()
	CORS(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORS_AnswersPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight should not reach the handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	w := httptest.NewRecorder()
	CORS(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request without a token should not reach the handler")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/save-user", nil)
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_InvalidFormat(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request with a malformed header should not reach the handler")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/save-user", nil)
	req.Header.Set("Authorization", "token-without-bearer-prefix")
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_PopulatesClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject: "sub-1",
	}).SignedString([]byte("test-key"))
	assert.NoError(t, err)

	var got authn.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value(ClaimsKey).(authn.Claims)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/save-user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sub-1", got.Subject)
}

func TestRequestID_SetsHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/signup", nil)
	w := httptest.NewRecorder()
	RequestID(next).ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
