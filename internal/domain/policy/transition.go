// Package policy contiene la política de transiciones: la tabla fija de
// triples (rol, estado origen, estado destino) permitidos. Es una función de
// decisión pura, sin estado propio.
package policy

import "github.com/tu-usuario/custodia-pro/internal/domain/entity"

type edge struct {
	from entity.ProductStatus
	to   entity.ProductStatus
}

// Tabla fija de transiciones por rol. Todo triple no listado se deniega.
// Se prefiere una tabla pequeña sobre un grafo genérico: la autorización queda
// auditable y no hay escalamiento por combinación transitiva de roles.
var allowedByRole = map[entity.Role][]edge{
	entity.RoleFabricante: {
		{entity.StatusCreated, entity.StatusInTransit},
	},
	entity.RoleDistribuidor: {
		{entity.StatusInTransit, entity.StatusAtDistributor},
		{entity.StatusAtDistributor, entity.StatusInTransit},
	},
	entity.RoleMinorista: {
		{entity.StatusInTransit, entity.StatusAtRetailer},
		{entity.StatusAtRetailer, entity.StatusSold},
	},
}

// AllowedForRole indica si el rol autoriza exactamente la arista (from→to).
func AllowedForRole(role entity.Role, from, to entity.ProductStatus) bool {
	for _, e := range allowedByRole[role] {
		if e.from == from && e.to == to {
			return true
		}
	}
	return false
}

// Allowed evalúa la unión de las tablas de los roles del actor: basta con que
// uno de sus roles autorice la arista exacta. No hay encadenamiento entre
// roles en una sola llamada (una llamada mueve el estado una sola arista).
func Allowed(roles entity.RoleSet, from, to entity.ProductStatus) bool {
	for role := range roles {
		if AllowedForRole(role, from, to) {
			return true
		}
	}
	return false
}
