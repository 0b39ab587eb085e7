// Package auth implements the admin session gate: signed session
// tokens carried in a cookie and pluggable credential verification.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the name of the cookie carrying the admin session
// token.
const SessionCookie = "admin_session"

// ErrInvalidSession is returned when a session token cannot be parsed,
// fails signature verification or has expired.
var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims identifies the authenticated admin behind a request.
type SessionClaims struct {
	AdminID  uint64
	Username string
}

// NewSessionToken builds and signs an HS256 JWT for an admin session.
// The token carries the admin id as subject, the username, expiration
// and issued-at claims. It returns the signed token and its expiry.
func NewSessionToken(secret string, adminID uint64, username string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":      adminID,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies the token signature and expiry and returns
// the embedded claims. Any failure is reported as ErrInvalidSession.
func ParseSessionToken(secret, raw string) (*SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, ErrInvalidSession
	}
	username, _ := claims["username"].(string)
	return &SessionClaims{AdminID: uint64(sub), Username: username}, nil
}
