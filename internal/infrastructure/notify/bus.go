// Package notify implementa el feed de notificaciones en proceso: entrega
// síncrona, exactamente una vez por evento y en orden de publicación.
package notify

import (
	"sync"

	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
	"github.com/tu-usuario/custodia-pro/pkg/logger"
)

var _ tracking.Notifier = (*Bus)(nil)

// Bus feed de eventos para colaboradores externos (indexadores, notificadores,
// métricas). Publish entrega a cada suscriptor bajo el mutex del bus: eso da
// un orden total entre eventos y evita duplicados. Los suscriptores deben ser
// rápidos; trabajo pesado va en su propia goroutine del lado del suscriptor.
type Bus struct {
	mu   sync.Mutex
	log  *logger.Logger
	subs []func(tracking.Event)
}

// NewBus construye el bus. El logger registra cada evento publicado.
func NewBus(log *logger.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registra un suscriptor. Pensado para el arranque; no hay Unsubscribe.
func (b *Bus) Subscribe(fn func(tracking.Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish entrega el evento a todos los suscriptores, en orden de suscripción.
func (b *Bus) Publish(ev tracking.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.log != nil {
		b.log.Info().
			Str("event_id", ev.ID).
			Str("type", string(ev.Type)).
			Str("actor", ev.Actor).
			Str("product_id", ev.ProductID).
			Msg("evento publicado")
	}
	for _, fn := range b.subs {
		fn(ev)
	}
}
