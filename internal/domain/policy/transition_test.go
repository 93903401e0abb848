package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/policy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla completa por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowedForRole_TablaCompleta(t *testing.T) {
	type caso struct {
		nombre string
		rol    entity.Role
		from   entity.ProductStatus
		to     entity.ProductStatus
		ok     bool
	}

	casos := []caso{
		// Aristas permitidas, exactamente las de la tabla
		{"fabricante despacha", entity.RoleFabricante, entity.StatusCreated, entity.StatusInTransit, true},
		{"distribuidor recibe", entity.RoleDistribuidor, entity.StatusInTransit, entity.StatusAtDistributor, true},
		{"distribuidor reenvía", entity.RoleDistribuidor, entity.StatusAtDistributor, entity.StatusInTransit, true},
		{"minorista recibe", entity.RoleMinorista, entity.StatusInTransit, entity.StatusAtRetailer, true},
		{"minorista vende", entity.RoleMinorista, entity.StatusAtRetailer, entity.StatusSold, true},

		// Roles sobre aristas ajenas
		{"fabricante no recibe en distribuidor", entity.RoleFabricante, entity.StatusInTransit, entity.StatusAtDistributor, false},
		{"fabricante no vende", entity.RoleFabricante, entity.StatusAtRetailer, entity.StatusSold, false},
		{"distribuidor no despacha desde CREATED", entity.RoleDistribuidor, entity.StatusCreated, entity.StatusInTransit, false},
		{"distribuidor no recibe en minorista", entity.RoleDistribuidor, entity.StatusInTransit, entity.StatusAtRetailer, false},
		{"minorista no recibe en distribuidor", entity.RoleMinorista, entity.StatusInTransit, entity.StatusAtDistributor, false},
		{"minorista no vende desde distribuidor", entity.RoleMinorista, entity.StatusAtDistributor, entity.StatusSold, false},

		// admin no tiene aristas: administra, no mueve productos
		{"admin no despacha", entity.RoleAdmin, entity.StatusCreated, entity.StatusInTransit, false},
		{"admin no vende", entity.RoleAdmin, entity.StatusAtRetailer, entity.StatusSold, false},

		// Saltos de estado nunca listados
		{"salto CREATED a AT_RETAILER", entity.RoleMinorista, entity.StatusCreated, entity.StatusAtRetailer, false},
		{"salto AT_DISTRIBUTOR a AT_RETAILER", entity.RoleMinorista, entity.StatusAtDistributor, entity.StatusAtRetailer, false},

		// Auto-transición no listada
		{"IN_TRANSIT a IN_TRANSIT", entity.RoleDistribuidor, entity.StatusInTransit, entity.StatusInTransit, false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.ok, policy.AllowedForRole(c.rol, c.from, c.to))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SOLD es terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowedForRole_SoldEsTerminal(t *testing.T) {
	roles := []entity.Role{entity.RoleFabricante, entity.RoleDistribuidor, entity.RoleMinorista, entity.RoleAdmin}
	destinos := []entity.ProductStatus{
		entity.StatusCreated, entity.StatusInTransit, entity.StatusAtDistributor,
		entity.StatusAtRetailer, entity.StatusSold,
	}
	for _, rol := range roles {
		for _, to := range destinos {
			assert.False(t, policy.AllowedForRole(rol, entity.StatusSold, to),
				"ningún rol debe poder salir de SOLD (rol=%s, to=%s)", rol, to)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Unión de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowed_UnionDeRoles(t *testing.T) {
	multi := entity.NewRoleSet(entity.RoleFabricante, entity.RoleMinorista)

	// Basta con que uno de los roles autorice la arista exacta.
	assert.True(t, policy.Allowed(multi, entity.StatusCreated, entity.StatusInTransit),
		"el rol fabricante del set autoriza el despacho")
	assert.True(t, policy.Allowed(multi, entity.StatusAtRetailer, entity.StatusSold),
		"el rol minorista del set autoriza la venta")

	// La unión no encadena: ninguno de los dos roles tiene esta arista.
	assert.False(t, policy.Allowed(multi, entity.StatusInTransit, entity.StatusAtDistributor),
		"la unión de roles no crea aristas nuevas")
	assert.False(t, policy.Allowed(multi, entity.StatusCreated, entity.StatusSold),
		"la unión no habilita saltos de varios pasos")
}

func TestAllowed_SinRoles(t *testing.T) {
	assert.False(t, policy.Allowed(entity.NewRoleSet(), entity.StatusCreated, entity.StatusInTransit),
		"sin roles no hay transiciones")
	assert.False(t, policy.Allowed(nil, entity.StatusCreated, entity.StatusInTransit),
		"un set nil se comporta como vacío")
}
