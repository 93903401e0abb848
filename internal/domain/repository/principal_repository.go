package repository

import "github.com/tu-usuario/custodia-pro/internal/domain/entity"

// PrincipalRepository define el puerto de persistencia para cuentas de
// principal (autenticación del boundary). FindByEmail y GetByID devuelven
// (nil, nil) si no existe.
type PrincipalRepository interface {
	Create(p *entity.Principal) error
	FindByEmail(email string) (*entity.Principal, error)
	GetByID(id string) (*entity.Principal, error)
}
