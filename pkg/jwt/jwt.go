package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwt: secret vacío")
	ErrInvalidToken = errors.New("jwt: token inválido")
)

// Session identidad que viaja dentro del token; el middleware no consulta la DB.
type Session struct {
	UserID       string
	RestaurantID string
	Role         string // owner | manager | analyst
}

type sessionClaims struct {
	jwt.RegisteredClaims
	RestaurantID string `json:"restaurant_id"`
	Role         string `json:"role"`
}

// Issuer firma sesiones HS256 con un secreto compartido.
type Issuer struct {
	secret []byte
	name   string
	ttl    time.Duration
}

// NewIssuer valida el secreto y fija emisor y duración de la sesión.
func NewIssuer(secret, name string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Issuer{secret: []byte(secret), name: name, ttl: ttl}, nil
}

// Sign emite el token de la sesión. El user id va en el claim sub.
func (i *Issuer) Sign(s Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.name,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		RestaurantID: s.RestaurantID,
		Role:         s.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify comprueba firma, algoritmo y expiración y devuelve la sesión.
func (i *Issuer) Verify(token string) (Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return Session{}, fmt.Errorf("%w: sin sujeto", ErrInvalidToken)
	}
	return Session{UserID: claims.Subject, RestaurantID: claims.RestaurantID, Role: claims.Role}, nil
}

// Generate atajo para firmar una sesión con un secreto y duración en minutos.
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	iss, err := NewIssuer(secret, issuer, time.Duration(expMinutes)*time.Minute)
	if err != nil {
		return "", err
	}
	return iss.Sign(s)
}

// Parse atajo para verificar un token con un secreto.
func Parse(secret, token string) (Session, error) {
	iss, err := NewIssuer(secret, "", 0)
	if err != nil {
		return Session{}, err
	}
	return iss.Verify(token)
}
