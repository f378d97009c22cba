package testfixtures

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const JWTSecret = "test-secret"

// BearerToken signs an HS256 token with the claims AuthMiddleware reads.
func BearerToken(t *testing.T, userID, tenantID uint, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userID,
		"tenantId": tenantID,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}
