package dto

import "time"

// RegisterRequest registro de una cuenta de principal.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PrincipalResponse cuenta de principal (sin hash).
type PrincipalResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token JWT + cuenta.
type LoginResponse struct {
	Token     string            `json:"token"`
	Principal PrincipalResponse `json:"principal"`
}
