package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken creates a short-lived access token for a user. The
// identity service is the real issuer in production; this helper exists for
// local setups and tests.
func GenerateAccessToken(userID uint, email string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = userID
	claims["email"] = email
	claims["exp"] = time.Now().Add(15 * time.Minute).Unix()
	secret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(secret))
}
