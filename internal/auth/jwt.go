package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func secret() ([]byte, error) {
	if jwtSecret != nil {
		return jwtSecret, nil
	}
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	jwtSecret = []byte(s)
	return jwtSecret, nil
}

// Claims do token do vendedor. Carrega também o vínculo de rota, para que
// toda operação autenticada saiba em qual rota atuar sem consulta extra.
type Claims struct {
	VendedorID uint `json:"vendedorId"`
	RotaID     uint `json:"rotaId"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 24h.
func GerarToken(vendedorID, rotaID uint) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}
	claims := &Claims{
		VendedorID: vendedorID,
		RotaID:     rotaID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(vendedorID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidarToken valida o token e retorna as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
