package dto

import "time"

// RegisterProductRequest alta de un producto. El ID lo aporta el llamador y
// es inmutable. Location es opcional: es la ubicación del evento de creación
// (por defecto "registro").
type RegisterProductRequest struct {
	ID       string `json:"id"`
	Metadata string `json:"metadata"`
	Location string `json:"location"`
}

// UpdateLocationRequest avance de estado con ubicación del evento.
type UpdateLocationRequest struct {
	Location  string `json:"location"`
	NewStatus string `json:"new_status"`
}

// TransferOwnershipRequest transferencia de propiedad. No toca estado ni historial.
type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

// ProductResponse instantánea del producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Status      string    `json:"status"`
	Metadata    string    `json:"metadata"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// TrackingEventResponse una entrada del historial.
type TrackingEventResponse struct {
	Actor     string    `json:"actor"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse historial completo y ordenado de un producto. Sin paginación:
// se devuelve siempre completo (límite de escala asumido y documentado).
type HistoryResponse struct {
	ProductID string                  `json:"product_id"`
	Events    []TrackingEventResponse `json:"events"`
}
