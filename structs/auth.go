package structs

import "time"

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AuthClaims struct {
	Role string
	Jti  string
	Iat  time.Time
	Exp  time.Time
}
