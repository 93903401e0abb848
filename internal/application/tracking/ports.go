package tracking

import (
	"context"

	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

// TxRunner ejecuta una función como unidad atómica sobre el estado
// autoritativo, pasando repositorios atados a esa unidad (transacción de BD o
// lock único del store en memoria). Garantiza la linealización exigida por el
// motor de ciclo de vida: todas las validaciones corren dentro de la unidad
// antes de cualquier escritura, y la escritura del producto y el append al
// historial se confirman juntos o no se confirma ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		events repository.TrackingEventRepository,
		roles repository.RoleRepository,
		guard repository.GuardRepository,
	) error) error
}
