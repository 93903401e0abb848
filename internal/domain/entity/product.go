package entity

import "time"

// ProductStatus estado de un producto dentro de la cadena de custodia.
type ProductStatus string

// Estados del ciclo de vida. CREATED es el único estado inicial (solo vía registro)
// y SOLD es terminal: no existe transición de salida en la política.
const (
	StatusCreated       ProductStatus = "CREATED"        // registrado por el fabricante
	StatusInTransit     ProductStatus = "IN_TRANSIT"     // en tránsito logístico
	StatusAtDistributor ProductStatus = "AT_DISTRIBUTOR" // recibido por el distribuidor
	StatusAtRetailer    ProductStatus = "AT_RETAILER"    // recibido por el minorista
	StatusSold          ProductStatus = "SOLD"           // vendido al consumidor final
)

// Valid indica si el estado es uno de los conocidos.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusInTransit, StatusAtDistributor, StatusAtRetailer, StatusSold:
		return true
	}
	return false
}

// Product representa un bien físico identificado de forma única y rastreado
// a lo largo de la cadena de custodia. El ID lo aporta el llamador y es
// inmutable; Status solo cambia vía transiciones validadas; Owner solo vía
// transferencia de propiedad. Los productos nunca se eliminan.
type Product struct {
	ID          string
	Owner       string // principal propietario actual
	Status      ProductStatus
	Metadata    string // puntero/hash opaco; el contenido vive en un almacén externo
	CreatedAt   time.Time
	LastUpdated time.Time
}
