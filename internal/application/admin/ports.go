package admin

import (
	"context"

	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica sobre el registro de roles
// y el guard operacional (transacción de BD o lock único del store en memoria).
type TxRunner interface {
	RunAdmin(ctx context.Context, fn func(
		roles repository.RoleRepository,
		guard repository.GuardRepository,
	) error) error
}
