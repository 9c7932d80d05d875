package middleware

import (
	"fmt"
	"time"

	"lms/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Activation links carry a signed, expiring token instead of the raw user id,
// so account ids cannot be enumerated and activated by guessing.

// GenerateActivationToken creates a one-time activation token for the user
func GenerateActivationToken(userID uint) (string, error) {
	ttl := time.Duration(config.AppConfig.ActivationTTLHours) * time.Hour
	claims := jwt.MapClaims{
		"userId":  userID,
		"purpose": "activation",
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// ParseActivationToken validates an activation token and returns the user id it
// was issued for. Expired, malformed or non-activation tokens are rejected.
func ParseActivationToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid activation token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid activation token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "activation" {
		return 0, fmt.Errorf("invalid activation token")
	}
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, fmt.Errorf("invalid activation token")
	}

	return uint(userID), nil
}
