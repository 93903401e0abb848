package repository

import "github.com/tu-usuario/custodia-pro/internal/domain/entity"

// TrackingEventRepository define el puerto del historial append-only por
// producto. No existe update ni delete: el historial nunca se reordena,
// trunca ni edita.
type TrackingEventRepository interface {
	Append(productID string, ev *entity.TrackingEvent) error
	ListByProduct(productID string) ([]*entity.TrackingEvent, error)
}
