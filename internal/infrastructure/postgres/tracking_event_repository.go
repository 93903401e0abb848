package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var _ repository.TrackingEventRepository = (*TrackingEventRepo)(nil)

// TrackingEventRepo historial append-only sobre PostgreSQL. El orden lo da un
// bigserial: nunca hay UPDATE ni DELETE sobre tracking_events.
type TrackingEventRepo struct {
	q Querier
}

// NewTrackingEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrackingEventRepository(q Querier) *TrackingEventRepo {
	return &TrackingEventRepo{q: q}
}

// Append agrega una entrada al historial del producto.
func (r *TrackingEventRepo) Append(productID string, ev *entity.TrackingEvent) error {
	query := `
		INSERT INTO tracking_events (product_id, actor, location, status, ts)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		productID, ev.Actor, ev.Location, string(ev.Status), ev.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert tracking event: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial completo en orden de inserción.
func (r *TrackingEventRepo) ListByProduct(productID string) ([]*entity.TrackingEvent, error) {
	query := `
		SELECT actor, location, status, ts
		FROM tracking_events WHERE product_id = $1 ORDER BY seq ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrackingEvent
	for rows.Next() {
		var (
			ev     entity.TrackingEvent
			status string
		)
		if err := rows.Scan(&ev.Actor, &ev.Location, &status, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		ev.Status = entity.ProductStatus(status)
		list = append(list, &ev)
	}
	return list, rows.Err()
}
