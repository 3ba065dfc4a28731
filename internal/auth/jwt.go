package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity embedded in an access token: the user's id and
// email. Tokens are deliberately issued without an expiry claim; rotating
// JWT_SECRET is the mechanism that invalidates outstanding sessions.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the given user identity.
func IssueToken(secret string, userID int64, email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID, Email: email})
	return t.SignedString([]byte(secret))
}

// ParseToken validates raw against the shared secret and returns its claims.
// Tokens signed with anything other than HMAC are rejected.
func ParseToken(secret, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
