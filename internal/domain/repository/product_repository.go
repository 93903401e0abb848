package repository

import (
	"time"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe; los llamadores reciben
// siempre una copia, nunca un handle mutable al estado autoritativo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	UpdateStatus(id string, status entity.ProductStatus, updatedAt time.Time) error
	UpdateOwner(id string, owner string, updatedAt time.Time) error
}
