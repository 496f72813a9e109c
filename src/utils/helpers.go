package utils

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"hms/src/types"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func RandomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}

// GenerateUniqueCode draws candidates until one passes the exists check.
// Retries are unbounded; collisions on an 8-char code space are rare enough
// that the loop terminates in practice.
func GenerateUniqueCode(gen func() string, exists func(string) bool) string {
	for {
		code := gen()
		if !exists(code) {
			return code
		}
	}
}

func codeExists(tx *gorm.DB, model any, column, code string) bool {
	var count int64
	if err := tx.Model(model).Where(fmt.Sprintf("%s = ?", column), code).Count(&count).Error; err != nil {
		log.Printf("Error checking %s uniqueness: %s\n", column, err.Error())
		return false
	}
	return count > 0
}

// GenerateReservationNumber returns an 8-character uppercase alphanumeric
// code unique among reservations.
func GenerateReservationNumber(tx *gorm.DB, model any) string {
	return GenerateUniqueCode(
		func() string { return RandomCode(8) },
		func(code string) bool { return codeExists(tx, model, "reservation_number", code) },
	)
}

// GenerateDocumentNumber returns a PREFIX-YYYY-###### code unique for the
// given model/column. Used for invoices, payments and refunds.
func GenerateDocumentNumber(tx *gorm.DB, model any, column, prefix string) string {
	year := time.Now().Year()
	return GenerateUniqueCode(
		func() string { return fmt.Sprintf("%s-%d-%s", prefix, year, RandomDigits(6)) },
		func(code string) bool { return codeExists(tx, model, column, code) },
	)
}

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func GenerateJWT(email string, userId uint, role string) (string, error) {
	expiry := time.Now().Add(12 * time.Hour)
	claims := &types.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userId),
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	if err != nil {
		log.Printf("Error signing token: %s\n", err.Error())
		return "", err
	}
	return signed, nil
}

const pageSize = 20

// Paginate applies page-number pagination to a list query.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
