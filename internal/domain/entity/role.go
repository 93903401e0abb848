package entity

// Role capacidad nombrada que un principal puede poseer. Los roles los otorga
// un administrador; nunca se infieren de la propiedad de un producto.
type Role string

const (
	RoleFabricante   Role = "fabricante"
	RoleDistribuidor Role = "distribuidor"
	RoleMinorista    Role = "minorista"
	RoleAdmin        Role = "admin"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleFabricante, RoleDistribuidor, RoleMinorista, RoleAdmin:
		return true
	}
	return false
}

// RoleSet conjunto de roles de un principal (un principal puede tener varios).
type RoleSet map[Role]bool

// NewRoleSet construye un conjunto a partir de roles sueltos.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// Has indica si el conjunto contiene el rol.
func (s RoleSet) Has(r Role) bool { return s[r] }

// Clone devuelve una copia independiente del conjunto.
func (s RoleSet) Clone() RoleSet {
	c := make(RoleSet, len(s))
	for r := range s {
		c[r] = true
	}
	return c
}
