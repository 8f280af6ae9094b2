package configs

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"framekart-io/api/models"
)

// SessionClaims ties a signed token to a storefront session.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// SessionTTL is the lifetime of a session token and its persisted record.
func SessionTTL() time.Duration {
	hours := LoadEnvOr("SESSION_TTL_HOURS", "24")
	d, err := time.ParseDuration(hours + "h")
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// GenerateSessionToken signs a token for an authenticated session.
func GenerateSessionToken(sessionID string, user models.User) (string, int64, error) {
	expirationTime := time.Now().Add(SessionTTL())
	jwtKey := LoadEnvFor("SECRET")

	claims := SessionClaims{
		SessionID: sessionID,
		Email:     user.Email,
		Name:      user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(signedToken string) (*SessionClaims, error) {
	jwtKey := LoadEnvFor("SECRET")
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("couldn't parse claims")
	}

	return claims, nil
}

// ExtractToken pulls the bearer token from the request.
func ExtractToken(c *gin.Context) string {
	return c.GetHeader("Authorization")
}
