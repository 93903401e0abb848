package repository

import "github.com/tu-usuario/custodia-pro/internal/domain/entity"

// RoleRepository define el puerto del registro de roles: relación
// muchos-a-muchos entre principals y roles. Grant y Revoke son idempotentes;
// la decisión de emitir o no un evento la toma el caso de uso consultando
// HasRole antes de escribir.
type RoleRepository interface {
	Grant(principalID string, role entity.Role) error
	Revoke(principalID string, role entity.Role) error
	HasRole(principalID string, role entity.Role) (bool, error)
	RolesOf(principalID string) (entity.RoleSet, error)
}
