package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token. Cada tipo se firma con su propio secreto.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeReset   = "reset"
)

// ErrWrongTokenType el token es válido pero no del tipo esperado.
var ErrWrongTokenType = errors.New("jwt: tipo de token inesperado")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "USER" | "AUDITOR"
	Type   string `json:"typ"`
}

// Subject datos del usuario que viajan en el token.
type Subject struct {
	UserID int64
	Email  string
	Role   string
}

// Generate genera un token JWT firmado del tipo indicado.
func Generate(secret string, sub Subject, tokenType, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(sub.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: sub.UserID,
		Email:  sub.Email,
		Role:   sub.Role,
		Type:   tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseOfType es Parse exigiendo además el tipo de token.
func ParseOfType(secret, tokenString, tokenType string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// ExpiresWithin indica si el token vence antes de d.
func (c *Claims) ExpiresWithin(d time.Duration) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return time.Until(c.ExpiresAt.Time) < d
}
