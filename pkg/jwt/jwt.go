package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// EmployeeNumber es el actor que se estampa en la auditoría de cada operación.
type Claims struct {
	jwt.RegisteredClaims
	EmployeeNumber int64  `json:"employee_number"`
	Role           string `json:"role"` // "admin" | "inspector" | "sales"
}

// Generate genera un token JWT firmado con el número de empleado y el rol.
func Generate(secret string, employeeNumber int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(employeeNumber, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		EmployeeNumber: employeeNumber,
		Role:           role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve número de empleado y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (employeeNumber int64, role string, err error) {
	if secret == "" {
		return 0, "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("claims inválidos")
	}
	if claims.EmployeeNumber <= 0 {
		return 0, "", fmt.Errorf("claims sin employee_number")
	}
	return claims.EmployeeNumber, claims.Role, nil
}
