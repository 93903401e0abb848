package entity

import "time"

// Principal actor autenticado que puede poseer roles y/o productos.
// La prueba de identidad (empresa real ↔ credencial) queda fuera de este core;
// aquí solo vive la cuenta con la que el boundary autentica.
type Principal struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
