package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims - claims access токена. Subject - идентификатор игрока
type UserClaims struct {
	jwt.RegisteredClaims
}
