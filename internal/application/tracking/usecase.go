package tracking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/custodia-pro/internal/application/dto"
	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/policy"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

// Ubicación del evento de creación cuando el registro no aporta una.
const defaultRegisterLocation = "registro"

// TrackingUseCase motor de ciclo de vida: registro de productos, transiciones
// de estado validadas por rol, transferencia de propiedad y consultas. Toda
// mutación corre dentro del TxRunner (validar antes de escribir, escritura y
// append atómicos) y publica sus eventos en el feed después del commit.
type TrackingUseCase struct {
	tx       TxRunner
	products repository.ProductRepository       // lecturas fuera de tx
	events   repository.TrackingEventRepository // lecturas fuera de tx
	notifier Notifier
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(tx TxRunner, products repository.ProductRepository, events repository.TrackingEventRepository, notifier Notifier) *TrackingUseCase {
	return &TrackingUseCase{tx: tx, products: products, events: events, notifier: notifier}
}

// RegisterProduct registra un producto nuevo. Requiere rol fabricante y guard
// sin pausar. Falla con ErrDuplicado si el ID ya existe y con ErrMetadataVacia
// si la metadata está vacía. En éxito el estado inicia en CREATED, el
// propietario es el actor y se agrega el primer evento del historial.
func (uc *TrackingUseCase) RegisterProduct(ctx context.Context, actorID string, in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, domain.ErrEntradaInvalida
	}
	metadata := strings.TrimSpace(in.Metadata)
	location := normalizeLocation(in.Location)
	if location == "" {
		location = defaultRegisterLocation
	}

	var created *entity.Product
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		events repository.TrackingEventRepository,
		roles repository.RoleRepository,
		guard repository.GuardRepository,
	) error {
		if err := ensureNotPaused(guard); err != nil {
			return err
		}
		ok, err := roles.HasRole(actorID, entity.RoleFabricante)
		if err != nil {
			return err
		}
		if !ok {
			return &domain.ForbiddenError{Role: entity.RoleFabricante}
		}
		if metadata == "" {
			return domain.ErrMetadataVacia
		}
		existing, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.AlreadyExistsError{ID: id}
		}

		now := time.Now()
		p := &entity.Product{
			ID:          id,
			Owner:       actorID,
			Status:      entity.StatusCreated,
			Metadata:    metadata,
			CreatedAt:   now,
			LastUpdated: now,
		}
		if err := products.Create(p); err != nil {
			return err
		}
		if err := events.Append(id, &entity.TrackingEvent{
			Actor:     actorID,
			Location:  location,
			Status:    entity.StatusCreated,
			Timestamp: now,
		}); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(Event{
		ID:        uuid.New().String(),
		Type:      EventProductCreated,
		Actor:     actorID,
		Timestamp: created.CreatedAt,
		ProductID: created.ID,
		Location:  location,
		NewStatus: created.Status,
	})
	return toProductResponse(created), nil
}

// UpdateLocation registra una ubicación y avanza el estado del producto si la
// política autoriza la arista (estado actual → nuevo estado) para alguno de
// los roles del actor. Un re-registro del mismo estado agregaría historial y
// evento de ubicación pero no evento de cambio de estado; bajo la tabla fija
// esa rama es inalcanzable para entradas legales y se conserva por defensa.
func (uc *TrackingUseCase) UpdateLocation(ctx context.Context, actorID, productID string, in dto.UpdateLocationRequest) (*dto.ProductResponse, error) {
	location := normalizeLocation(in.Location)
	newStatus := entity.ProductStatus(strings.TrimSpace(in.NewStatus))

	var (
		updated       *entity.Product
		prevStatus    entity.ProductStatus
		statusChanged bool
		when          time.Time
	)
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		events repository.TrackingEventRepository,
		roles repository.RoleRepository,
		guard repository.GuardRepository,
	) error {
		if err := ensureNotPaused(guard); err != nil {
			return err
		}
		p, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return &domain.NotFoundError{ID: productID}
		}
		if location == "" {
			return domain.ErrUbicacionVacia
		}
		actorRoles, err := roles.RolesOf(actorID)
		if err != nil {
			return err
		}
		if !policy.Allowed(actorRoles, p.Status, newStatus) {
			return &domain.TransitionError{From: p.Status, To: newStatus}
		}

		when = time.Now()
		prevStatus = p.Status
		statusChanged = p.Status != newStatus
		if err := products.UpdateStatus(productID, newStatus, when); err != nil {
			return err
		}
		if err := events.Append(productID, &entity.TrackingEvent{
			Actor:     actorID,
			Location:  location,
			Status:    newStatus,
			Timestamp: when,
		}); err != nil {
			return err
		}
		p.Status = newStatus
		p.LastUpdated = when
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(Event{
		ID:         uuid.New().String(),
		Type:       EventLocationUpdated,
		Actor:      actorID,
		Timestamp:  when,
		ProductID:  productID,
		Location:   location,
		PrevStatus: prevStatus,
		NewStatus:  updated.Status,
	})
	if statusChanged {
		uc.notifier.Publish(Event{
			ID:         uuid.New().String(),
			Type:       EventStatusChanged,
			Actor:      actorID,
			Timestamp:  when,
			ProductID:  productID,
			PrevStatus: prevStatus,
			NewStatus:  updated.Status,
		})
	}
	return toProductResponse(updated), nil
}

// TransferOwnership cambia el propietario del producto. Solo el propietario
// actual o un admin pueden transferir. No toca estado ni historial; solo
// Owner y LastUpdated.
func (uc *TrackingUseCase) TransferOwnership(ctx context.Context, actorID, productID string, in dto.TransferOwnershipRequest) (*dto.ProductResponse, error) {
	newOwner := strings.TrimSpace(in.NewOwner)
	if newOwner == "" {
		return nil, domain.ErrEntradaInvalida
	}

	var (
		updated  *entity.Product
		oldOwner string
		when     time.Time
	)
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		events repository.TrackingEventRepository,
		roles repository.RoleRepository,
		guard repository.GuardRepository,
	) error {
		if err := ensureNotPaused(guard); err != nil {
			return err
		}
		p, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return &domain.NotFoundError{ID: productID}
		}
		if actorID != p.Owner {
			isAdmin, err := roles.HasRole(actorID, entity.RoleAdmin)
			if err != nil {
				return err
			}
			if !isAdmin {
				return &domain.OwnershipError{Actor: actorID, Owner: p.Owner}
			}
		}

		when = time.Now()
		oldOwner = p.Owner
		if err := products.UpdateOwner(productID, newOwner, when); err != nil {
			return err
		}
		p.Owner = newOwner
		p.LastUpdated = when
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Publish(Event{
		ID:        uuid.New().String(),
		Type:      EventOwnershipTransferred,
		Actor:     actorID,
		Timestamp: when,
		ProductID: productID,
		OldOwner:  oldOwner,
		NewOwner:  newOwner,
		NewStatus: updated.Status,
	})
	return toProductResponse(updated), nil
}

// GetProduct devuelve la instantánea actual del producto.
func (uc *TrackingUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return toProductResponse(p), nil
}

// GetHistory devuelve el historial completo y ordenado del producto.
func (uc *TrackingUseCase) GetHistory(id string) (*dto.HistoryResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	list, err := uc.events.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	events := make([]dto.TrackingEventResponse, 0, len(list))
	for _, ev := range list {
		events = append(events, dto.TrackingEventResponse{
			Actor:     ev.Actor,
			Location:  ev.Location,
			Status:    string(ev.Status),
			Timestamp: ev.Timestamp,
		})
	}
	return &dto.HistoryResponse{ProductID: id, Events: events}, nil
}

func ensureNotPaused(guard repository.GuardRepository) error {
	paused, err := guard.IsPaused()
	if err != nil {
		return err
	}
	if paused {
		return domain.ErrPausado
	}
	return nil
}

// normalizeLocation recorta espacios y normaliza a NFC el texto libre de
// ubicación antes de que entre al historial.
func normalizeLocation(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Owner:       p.Owner,
		Status:      string(p.Status),
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
		LastUpdated: p.LastUpdated,
	}
}
