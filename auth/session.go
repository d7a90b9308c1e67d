package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser cookie that carries the session token.
const CookieName = "optiedge_session"

// Sessions signs and checks the token handed out after a successful login.
// The key lives only in memory, so a restart logs everyone out.
type Sessions struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewSessions(ttl time.Duration) (*Sessions, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}
	return &Sessions{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for username.
func (s *Sessions) Issue(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Verify returns the username carried by a valid token.
func (s *Sessions) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}
	return claims.Subject, nil
}

// Require rejects requests without a valid session cookie.
func (s *Sessions) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			writeJSONError(w, "Please log in", http.StatusUnauthorized)
			return
		}
		if _, err := s.Verify(cookie.Value); err != nil {
			writeJSONError(w, "Please log in", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
