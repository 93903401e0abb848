package entity

import "time"

// TrackingEvent una entrada inmutable del historial de un producto.
// Status es el estado del producto DESPUÉS de la acción que generó el evento.
// El primer evento de todo producto es siempre el de creación con CREATED.
type TrackingEvent struct {
	Actor     string // principal que ejecutó la acción
	Location  string // descripción libre, nunca vacía
	Status    ProductStatus
	Timestamp time.Time
}
