package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the access role carried by an API token.
type Role string

const (
	// RoleStudent may take exams and submit answers.
	RoleStudent Role = "student"
	// RoleObserver may manage exam settings and read watermark reports.
	RoleObserver Role = "observer"
)

// Claims is the JWT claim set issued by the service: the registered claims
// plus the caller's role.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a parsed or freshly signed JWT.
//
// SignedString holds the compact serialized form
// (header.payload.signature) ready to be sent in the Authorization header.
// UserID and Role are parsed copies of the "sub" and "role" claims.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
	Role         Role   `json:"-"`
}

// UserIDFromClaims parses the "sub" claim of c as a base-10 int64.
func UserIDFromClaims(c *Claims) (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
