package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject datos del usuario que viajan dentro del token.
// El token es autosuficiente: el middleware no vuelve a consultar la DB, por lo que un
// cambio de perfil solo se refleja al emitir un token nuevo (ventana acotada por el TTL).
type Subject struct {
	CodUsuario    string
	Nome          string
	Perfil        string // "representante" | "coordenador" | "diretor"
	CoordenadorID string // solo representantes
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	CodUsuario    string `json:"codusuario"`
	Nome          string `json:"nome"`
	Perfil        string `json:"perfil"`
	CoordenadorID string `json:"coordenador_id,omitempty"`
}

// Identity devuelve los datos de usuario contenidos en los claims.
func (c *Claims) Identity() Subject {
	return Subject{
		CodUsuario:    c.CodUsuario,
		Nome:          c.Nome,
		Perfil:        c.Perfil,
		CoordenadorID: c.CoordenadorID,
	}
}

// Generate genera un token JWT HS256 firmado con la identidad completa del usuario.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.CodUsuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		CodUsuario:    sub.CodUsuario,
		Nome:          sub.Nome,
		Perfil:        sub.Perfil,
		CoordenadorID: sub.CoordenadorID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
