package domain

import (
	"errors"
	"fmt"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
)

// Errores de dominio (sin dependencias externas). Todos son fallos de
// validación locales: se devuelven de forma síncrona al llamador, nunca se
// reintentan y nunca dejan una mutación aplicada a medias.
var (
	ErrNoEncontrado        = errors.New("producto no encontrado")
	ErrDuplicado           = errors.New("producto duplicado")
	ErrMetadataVacia       = errors.New("metadata requerida")
	ErrUbicacionVacia      = errors.New("ubicación requerida")
	ErrTransicionInvalida  = errors.New("transición no autorizada")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrAccesoDenegado      = errors.New("acceso denegado")
	ErrPausado             = errors.New("operaciones en pausa")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrEmailYaRegistrado   = errors.New("el email ya está registrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

// NotFoundError identifica el producto inexistente. Compatible con
// errors.Is(err, ErrNoEncontrado).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("producto '%s' no encontrado", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNoEncontrado }

// AlreadyExistsError identifica el ID duplicado en un registro.
type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("producto '%s' ya existe", e.ID)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrDuplicado }

// TransitionError transición (from→to) no autorizada por la política para los
// roles del actor. Lleva ambos estados para que el llamador distinga "rol
// equivocado" de "estado equivocado" sin revelar qué roles posee el actor.
type TransitionError struct {
	From entity.ProductStatus
	To   entity.ProductStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transición no autorizada de %s a %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrTransicionInvalida }

// OwnershipError transferencia intentada por quien no es propietario ni admin.
type OwnershipError struct {
	Actor string
	Owner string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("'%s' no puede transferir: el propietario actual es '%s'", e.Actor, e.Owner)
}

func (e *OwnershipError) Is(target error) bool { return target == ErrNoAutorizado }

// ForbiddenError el llamador no posee el rol que exige la operación.
type ForbiddenError struct {
	Role entity.Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("se requiere el rol '%s'", e.Role)
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrAccesoDenegado }
