package utils

import (
	"codemate/config"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the claims in the JWT token
type JWTClaims struct {
	UserID    string `json:"user_id"`
	EmailID   string `json:"email_id"`
	FirstName string `json:"first_name"`
	jwt.RegisteredClaims
}

// GenerateJWTToken generates a signed JWT token for the given user
func GenerateJWTToken(userID, emailID, firstName string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user ID cannot be empty")
	}
	if emailID == "" {
		return "", fmt.Errorf("email ID cannot be empty")
	}

	claims := JWTClaims{
		UserID:    userID,
		EmailID:   emailID,
		FirstName: firstName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "codemate-backend",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %v", err)
	}

	return tokenString, nil
}

// VerifyJWTToken verifies and decodes a JWT token
func VerifyJWTToken(tokenString string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string cannot be empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT token: %v", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("failed to extract JWT claims")
	}

	return claims, nil
}

// ValidateJWTToken validates a JWT token and returns the claims if valid
func ValidateJWTToken(tokenString string) (*JWTClaims, error) {
	claims, err := VerifyJWTToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("user ID is missing in JWT token")
	}

	if claims.EmailID == "" {
		return nil, fmt.Errorf("email ID is missing in JWT token")
	}

	return claims, nil
}

// TokenRemainingValidity returns how long the token is still valid for,
// used to bound the revocation entry lifetime on logout
func TokenRemainingValidity(claims *JWTClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
