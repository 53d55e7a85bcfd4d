package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var SecretKey = []byte("rahasia-super-kuat")

const TokenTTL = 7 * 24 * time.Hour

func GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	})
	return token.SignedString(SecretKey)
}

type TokenClaims struct {
	UserID uint
	Email  string
}

func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return SecretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token tidak valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token tidak valid")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, errors.New("token tidak valid")
	}
	email, _ := claims["email"].(string)

	return &TokenClaims{UserID: uint(sub), Email: email}, nil
}
