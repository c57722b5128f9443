package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	UserKey     ctxKey = "uid"
	IdentityKey ctxKey = "identity"
)

// Identity carries the auth provider's user metadata. It is the source
// for presentation defaults when no profile row exists yet.
type Identity struct {
	Name  string
	Email string
}

// JWT returns middleware that validates HS256 JWTs using the given shared
// secret and injects the subject plus identity claims into the context.
func JWT(secret []byte, iss, aud string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			tok := strings.TrimPrefix(h, "Bearer ")

			parsed, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
				// Prevent algorithm confusion — only accept HMAC.
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			}, jwt.WithIssuer(iss), jwt.WithAudience(aud))

			if err != nil || !parsed.Valid {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, ok := parsed.Claims.(jwt.MapClaims)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			uid, ok := claims["sub"].(string)
			if !ok || uid == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ident := Identity{}
			if v, ok := claims["name"].(string); ok {
				ident.Name = v
			}
			if v, ok := claims["email"].(string); ok {
				ident.Email = v
			}

			ctx := context.WithValue(r.Context(), UserKey, uid)
			ctx = context.WithValue(ctx, IdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id from the context.
func UserID(ctx context.Context) string {
	v := ctx.Value(UserKey)
	if v == nil {
		return ""
	}
	return v.(string)
}

// IdentityFromContext extracts the auth identity metadata, if present.
func IdentityFromContext(ctx context.Context) Identity {
	v := ctx.Value(IdentityKey)
	if v == nil {
		return Identity{}
	}
	return v.(Identity)
}
