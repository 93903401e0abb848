// Package memory implementa el estado autoritativo en memoria: productos,
// historial, registro de roles, guard y cuentas de principal detrás de un
// único RWMutex. El lock único lineariza todas las mutaciones (ninguna pareja
// de mutaciones observa el mismo pre-estado) y hace atómica la unidad
// escritura-de-producto + append-al-historial.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/custodia-pro/internal/application/admin"
	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*Store)(nil)
	_ repository.TrackingEventRepository = (*Store)(nil)
	_ repository.RoleRepository          = (*Store)(nil)
	_ repository.GuardRepository         = (*Store)(nil)
	_ repository.PrincipalRepository     = (*PrincipalStore)(nil)
	_ tracking.TxRunner                  = (*Store)(nil)
	_ admin.TxRunner                     = (*Store)(nil)
)

// Store estado autoritativo en memoria. El cero no es usable; construir con NewStore.
type Store struct {
	mu         sync.RWMutex
	products   map[string]entity.Product
	history    map[string][]entity.TrackingEvent
	roles      map[string]entity.RoleSet
	principals map[string]entity.Principal
	byEmail    map[string]string // email → principal ID
	paused     bool
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]entity.Product),
		history:    make(map[string][]entity.TrackingEvent),
		roles:      make(map[string]entity.RoleSet),
		principals: make(map[string]entity.Principal),
		byEmail:    make(map[string]string),
	}
}

// view acceso sin lock al store; solo válido dentro de Run/RunAdmin o con el
// lock ya tomado. Evita el deadlock de reentrar por los métodos públicos.
type view Store

// Run toma el lock de escritura y ejecuta fn contra vistas sin lock: la
// función completa es una unidad atómica y linealizada. Los casos de uso
// validan todo antes de la primera escritura y abortan al primer error, por lo
// que un fn fallido no deja escritura parcial visible.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	events repository.TrackingEventRepository,
	roles repository.RoleRepository,
	guard repository.GuardRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := (*view)(s)
	return fn(v, v, v, v)
}

// RunAdmin igual que Run, para las operaciones administrativas.
func (s *Store) RunAdmin(ctx context.Context, fn func(
	roles repository.RoleRepository,
	guard repository.GuardRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := (*view)(s)
	return fn(v, v)
}

// --- ProductRepository ---

func (s *Store) Create(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).Create(p)
}

func (s *Store) GetByID(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*view)(s).GetByID(id)
}

func (s *Store) UpdateStatus(id string, status entity.ProductStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).UpdateStatus(id, status, updatedAt)
}

func (s *Store) UpdateOwner(id string, owner string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).UpdateOwner(id, owner, updatedAt)
}

func (v *view) Create(p *entity.Product) error {
	if _, ok := v.products[p.ID]; ok {
		return &domain.AlreadyExistsError{ID: p.ID}
	}
	v.products[p.ID] = *p
	return nil
}

func (v *view) GetByID(id string) (*entity.Product, error) {
	p, ok := v.products[id]
	if !ok {
		return nil, nil
	}
	snapshot := p
	return &snapshot, nil
}

func (v *view) UpdateStatus(id string, status entity.ProductStatus, updatedAt time.Time) error {
	p, ok := v.products[id]
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	p.Status = status
	p.LastUpdated = updatedAt
	v.products[id] = p
	return nil
}

func (v *view) UpdateOwner(id string, owner string, updatedAt time.Time) error {
	p, ok := v.products[id]
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	p.Owner = owner
	p.LastUpdated = updatedAt
	v.products[id] = p
	return nil
}

// --- TrackingEventRepository ---

func (s *Store) Append(productID string, ev *entity.TrackingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).Append(productID, ev)
}

func (s *Store) ListByProduct(productID string) ([]*entity.TrackingEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*view)(s).ListByProduct(productID)
}

func (v *view) Append(productID string, ev *entity.TrackingEvent) error {
	v.history[productID] = append(v.history[productID], *ev)
	return nil
}

func (v *view) ListByProduct(productID string) ([]*entity.TrackingEvent, error) {
	src := v.history[productID]
	out := make([]*entity.TrackingEvent, 0, len(src))
	for i := range src {
		snapshot := src[i]
		out = append(out, &snapshot)
	}
	return out, nil
}

// --- RoleRepository ---

func (s *Store) Grant(principalID string, role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).Grant(principalID, role)
}

func (s *Store) Revoke(principalID string, role entity.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).Revoke(principalID, role)
}

func (s *Store) HasRole(principalID string, role entity.Role) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*view)(s).HasRole(principalID, role)
}

func (s *Store) RolesOf(principalID string) (entity.RoleSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*view)(s).RolesOf(principalID)
}

func (v *view) Grant(principalID string, role entity.Role) error {
	set, ok := v.roles[principalID]
	if !ok {
		set = entity.NewRoleSet()
		v.roles[principalID] = set
	}
	set[role] = true
	return nil
}

func (v *view) Revoke(principalID string, role entity.Role) error {
	delete(v.roles[principalID], role)
	return nil
}

func (v *view) HasRole(principalID string, role entity.Role) (bool, error) {
	return v.roles[principalID].Has(role), nil
}

func (v *view) RolesOf(principalID string) (entity.RoleSet, error) {
	return v.roles[principalID].Clone(), nil
}

// --- GuardRepository ---

func (s *Store) IsPaused() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (*view)(s).IsPaused()
}

func (s *Store) SetPaused(paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*view)(s).SetPaused(paused)
}

func (v *view) IsPaused() (bool, error) { return v.paused, nil }

func (v *view) SetPaused(paused bool) error {
	v.paused = paused
	return nil
}

// --- PrincipalRepository ---

// PrincipalStore adaptador del store para cuentas de principal. Tipo aparte
// porque sus métodos chocan en nombre con los del repositorio de productos.
type PrincipalStore struct {
	s *Store
}

// Principals devuelve el repositorio de cuentas respaldado por este store.
func (s *Store) Principals() *PrincipalStore { return &PrincipalStore{s: s} }

func (r *PrincipalStore) Create(p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.byEmail[p.Email]; ok {
		return domain.ErrEmailYaRegistrado
	}
	r.s.principals[p.ID] = *p
	r.s.byEmail[p.Email] = p.ID
	return nil
}

func (r *PrincipalStore) FindByEmail(email string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.byEmail[email]
	if !ok {
		return nil, nil
	}
	snapshot := r.s.principals[id]
	return &snapshot, nil
}

func (r *PrincipalStore) GetByID(id string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.principals[id]
	if !ok {
		return nil, nil
	}
	snapshot := p
	return &snapshot, nil
}
