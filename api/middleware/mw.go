package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/civicalert/citizen-services/internal/authn"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string
type tokenKey string

const ClaimsKey contextKey = "claims"
const TokenKey tokenKey = "token"

// CORS grants unrestricted cross-origin access on every response and
// answers OPTIONS preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,POST,GET")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		},
	)
}

// JWTMiddleware parses the bearer token and adds claims to the request
// context. The profile endpoint is only called post-authentication, so
// a missing or undecodable token is rejected here.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).With().
				Str("handler", "JWTMiddleware").Logger()

			// Get the Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug().Msg("authorization header missing")
				http.Error(w, "authorization header missing",
					http.StatusUnauthorized)
				return
			}

			// Check the Authorization header format
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader {
				logger.Error().Msg("invalid token format")
				http.Error(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			// Parse the token for JWT claims
			claims, err := authn.ParseClaims(token)

			if err != nil {
				logger.Error().Err(err).Msg("invalid bearer jwt token")
				http.Error(w, "invalid bearer jwt token", http.StatusUnauthorized)
				return
			}

			// Add the token and claims to the context
			ctx := context.WithValue(r.Context(), TokenKey, token)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// RequestID tags each request with a generated id, on the response
// header and in the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)

			logger := zerolog.Ctx(r.Context()).With().
				Str("request_id", id).Logger()

			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
