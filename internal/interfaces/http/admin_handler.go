package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/custodia-pro/internal/application/admin"
	"github.com/tu-usuario/custodia-pro/internal/application/dto"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
)

// AdminHandler maneja guard operacional y administración de roles (protegido, rol admin).
type AdminHandler struct {
	uc *admin.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Pause godoc
// @Summary      Pausar todas las operaciones mutantes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GuardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/pause [post]
func (h *AdminHandler) Pause(c *fiber.Ctx) error {
	if err := h.uc.Pause(c.Context(), GetPrincipalID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.GuardResponse{Paused: true})
}

// Unpause godoc
// @Summary      Reanudar operaciones
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GuardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/unpause [post]
func (h *AdminHandler) Unpause(c *fiber.Ctx) error {
	if err := h.uc.Unpause(c.Context(), GetPrincipalID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.GuardResponse{Paused: false})
}

// GrantRole godoc
// @Summary      Otorgar rol a un principal
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "Principal y rol"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/roles/grant [post]
func (h *AdminHandler) GrantRole(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.GrantRole(c.Context(), GetPrincipalID(c), in.PrincipalID, entity.Role(in.Role)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RevokeRole godoc
// @Summary      Revocar rol de un principal
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RoleRequest  true  "Principal y rol"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/roles/revoke [post]
func (h *AdminHandler) RevokeRole(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RevokeRole(c.Context(), GetPrincipalID(c), in.PrincipalID, entity.Role(in.Role)); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
