package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// UserIDContextKey carries the authenticated user's id through the
// request context.
const UserIDContextKey = contextKey("userID")

// GetUserID extracts the authenticated user's id from a request
// context. The second return is false for unauthenticated requests.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok
}

// TokenAuthenticator verifies bearer tokens on incoming requests and
// issues them for authenticated users. Tokens are HS256-signed JWTs
// with the user id in the subject claim.
type TokenAuthenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenAuthenticator(secret []byte, ttl time.Duration) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret, ttl: ttl}
}

// IssueToken mints a signed token for the given user.
func (a *TokenAuthenticator) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// verify parses and validates a token, returning the user id it was
// issued for.
func (a *TokenAuthenticator) verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token and stashes
// the authenticated user id in the request context.
func (a *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "Authorization missing", http.StatusUnauthorized)
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			http.Error(w, "Authorization invalid", http.StatusUnauthorized)
			return
		}

		userID, err := a.verify(tokenString)
		if err != nil {
			http.Error(w, "Authorization invalid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
