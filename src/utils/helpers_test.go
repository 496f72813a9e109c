package utils

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"hms/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestRandomCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		code := RandomCode(8)
		assert.Regexp(t, pattern, code)
	}
}

func TestRandomDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, RandomDigits(6))
	}
}

func TestGenerateUniqueCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10000; i++ {
		code := GenerateUniqueCode(
			func() string { return RandomCode(8) },
			func(c string) bool { return seen[c] },
		)
		assert.False(t, seen[code])
		seen[code] = true
	}
	assert.Len(t, seen, 10000)
}

func TestGenerateUniqueCodeRetries(t *testing.T) {
	attempts := 0
	code := GenerateUniqueCode(
		func() string {
			attempts++
			return fmt.Sprintf("CODE%d", attempts)
		},
		func(c string) bool { return c == "CODE1" || c == "CODE2" },
	)
	assert.Equal(t, "CODE3", code)
	assert.Equal(t, 3, attempts)
}

func TestDocumentNumberFormat(t *testing.T) {
	year := time.Now().Year()
	pattern := regexp.MustCompile(fmt.Sprintf(`^INV-%d-[0-9]{6}$`, year))
	code := GenerateUniqueCode(
		func() string { return fmt.Sprintf("INV-%d-%s", year, RandomDigits(6)) },
		func(string) bool { return false },
	)
	assert.Regexp(t, pattern, code)
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("staff@example.com", 42, "frontdesk")
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, "frontdesk", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}
