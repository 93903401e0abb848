package admin

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
)

// AdminUseCase operaciones administrativas: guard operacional (pause/unpause)
// y administración de roles. Todas exigen rol admin. Pausar estando en pausa
// (o reanudar sin pausa activa) es un éxito no-op: no hay alternancia estricta
// y en ese caso no se emite evento, porque no hubo mutación.
type AdminUseCase struct {
	tx       TxRunner
	notifier tracking.Notifier
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(tx TxRunner, notifier tracking.Notifier) *AdminUseCase {
	return &AdminUseCase{tx: tx, notifier: notifier}
}

// Pause activa el guard: toda operación mutante falla con ErrPausado hasta
// reanudar. Las consultas no se ven afectadas.
func (uc *AdminUseCase) Pause(ctx context.Context, actorID string) error {
	return uc.setPaused(ctx, actorID, true, tracking.EventPaused)
}

// Unpause desactiva el guard.
func (uc *AdminUseCase) Unpause(ctx context.Context, actorID string) error {
	return uc.setPaused(ctx, actorID, false, tracking.EventUnpaused)
}

func (uc *AdminUseCase) setPaused(ctx context.Context, actorID string, paused bool, evType tracking.EventType) error {
	changed := false
	err := uc.tx.RunAdmin(ctx, func(roles repository.RoleRepository, guard repository.GuardRepository) error {
		if err := requireAdmin(roles, actorID); err != nil {
			return err
		}
		current, err := guard.IsPaused()
		if err != nil {
			return err
		}
		if current == paused {
			return nil // no-op
		}
		if err := guard.SetPaused(paused); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}
	if changed {
		uc.notifier.Publish(tracking.Event{
			ID:        uuid.New().String(),
			Type:      evType,
			Actor:     actorID,
			Timestamp: time.Now(),
		})
	}
	return nil
}

// GrantRole otorga un rol a un principal. Idempotente: otorgar un rol ya
// poseído es un éxito no-op sin evento.
func (uc *AdminUseCase) GrantRole(ctx context.Context, actorID, principalID string, role entity.Role) error {
	return uc.setRole(ctx, actorID, principalID, role, true)
}

// RevokeRole revoca un rol de un principal. Idempotente igual que GrantRole.
func (uc *AdminUseCase) RevokeRole(ctx context.Context, actorID, principalID string, role entity.Role) error {
	return uc.setRole(ctx, actorID, principalID, role, false)
}

func (uc *AdminUseCase) setRole(ctx context.Context, actorID, principalID string, role entity.Role, grant bool) error {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" || !role.Valid() {
		return domain.ErrEntradaInvalida
	}

	changed := false
	err := uc.tx.RunAdmin(ctx, func(roles repository.RoleRepository, guard repository.GuardRepository) error {
		if err := requireAdmin(roles, actorID); err != nil {
			return err
		}
		has, err := roles.HasRole(principalID, role)
		if err != nil {
			return err
		}
		if has == grant {
			return nil // no-op
		}
		if grant {
			err = roles.Grant(principalID, role)
		} else {
			err = roles.Revoke(principalID, role)
		}
		if err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return err
	}
	if changed {
		evType := tracking.EventRoleGranted
		if !grant {
			evType = tracking.EventRoleRevoked
		}
		uc.notifier.Publish(tracking.Event{
			ID:        uuid.New().String(),
			Type:      evType,
			Actor:     actorID,
			Timestamp: time.Now(),
			Principal: principalID,
			Role:      role,
		})
	}
	return nil
}

func requireAdmin(roles repository.RoleRepository, actorID string) error {
	isAdmin, err := roles.HasRole(actorID, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		return &domain.ForbiddenError{Role: entity.RoleAdmin}
	}
	return nil
}
