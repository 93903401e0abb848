// Package metrics expone contadores Prometheus alimentados por el feed de
// notificaciones (un suscriptor del bus).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
)

// Recorder suscriptor del feed que cuenta mutaciones por tipo de evento y
// mantiene el estado del guard como gauge.
type Recorder struct {
	events *prometheus.CounterVec
	paused prometheus.Gauge
}

// NewRecorder construye el recorder y registra sus colectores.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "custodia",
			Name:      "events_total",
			Help:      "Eventos del feed por tipo.",
		}, []string{"type"}),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "custodia",
			Name:      "guard_paused",
			Help:      "1 si el guard operacional está activo.",
		}),
	}
	reg.MustRegister(r.events, r.paused)
	return r
}

// Observe procesa un evento del feed. Registrar con bus.Subscribe(rec.Observe).
func (r *Recorder) Observe(ev tracking.Event) {
	r.events.WithLabelValues(string(ev.Type)).Inc()
	switch ev.Type {
	case tracking.EventPaused:
		r.paused.Set(1)
	case tracking.EventUnpaused:
		r.paused.Set(0)
	}
}
