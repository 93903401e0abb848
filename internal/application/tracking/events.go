package tracking

import (
	"time"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
)

// EventType tipo de un evento del feed de notificaciones.
type EventType string

// Tipos de evento. Se emite exactamente uno (o dos, en el caso de un cambio
// de estado) por mutación aceptada, después del commit y en orden.
const (
	EventProductCreated       EventType = "PRODUCT_CREATED"
	EventLocationUpdated      EventType = "LOCATION_UPDATED"
	EventStatusChanged        EventType = "STATUS_CHANGED"
	EventOwnershipTransferred EventType = "OWNERSHIP_TRANSFERRED"
	EventPaused               EventType = "PAUSED"
	EventUnpaused             EventType = "UNPAUSED"
	EventRoleGranted          EventType = "ROLE_GRANTED"
	EventRoleRevoked          EventType = "ROLE_REVOKED"
)

// Event evento tipado del feed, destinado a colaboradores externos
// (indexadores, notificadores). Los campos se rellenan según el tipo.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`

	// Mutaciones sobre productos
	ProductID  string               `json:"product_id,omitempty"`
	Location   string               `json:"location,omitempty"`
	PrevStatus entity.ProductStatus `json:"prev_status,omitempty"`
	NewStatus  entity.ProductStatus `json:"new_status,omitempty"`
	OldOwner   string               `json:"old_owner,omitempty"`
	NewOwner   string               `json:"new_owner,omitempty"`

	// Eventos administrativos
	Principal string      `json:"principal,omitempty"`
	Role      entity.Role `json:"role,omitempty"`
}

// Notifier puerto de salida del feed. La implementación debe entregar cada
// evento exactamente una vez y en el orden de publicación.
type Notifier interface {
	Publish(ev Event)
}
