package watermark

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultTokenLength is the number of hex digits in a generated token.
const DefaultTokenLength = 16

const hexDigits = "0123456789abcdef"

// Token is a lowercase hexadecimal identity tag bound to one exam session.
type Token string

// ParseToken normalises s to lowercase and checks that it is a non-empty hex
// string.
func ParseToken(s string) (Token, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrEmptyToken
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidToken, s)
		}
	}
	return Token(s), nil
}

// NewRandomToken returns a fresh 64-bit token.
func NewRandomToken() (Token, error) {
	buf := make([]byte, DefaultTokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return Token(hex.EncodeToString(buf)), nil
}

// String returns the token digits.
func (t Token) String() string {
	return string(t)
}

// HasPrefix reports whether the token starts with prefix, ignoring case.
func (t Token) HasPrefix(prefix string) bool {
	return strings.HasPrefix(string(t), strings.ToLower(prefix))
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
