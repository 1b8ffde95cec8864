package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every canteen JWT. EmployeeID is the business id, the
// same handle the ordering and billing services key on.
type Claims struct {
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(employeeID, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		EmployeeID: employeeID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
