package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/custodia-pro/internal/application/dto"
	"github.com/tu-usuario/custodia-pro/pkg/jwt"
)

// Local key para el ID del principal en Fiber.
const LocalPrincipalID = "principal_id"

// AuthMiddleware valida el Bearer Token JWT y extrae el ID del principal a
// c.Locals. La autorización por rol NO va aquí: los roles se verifican en el
// core contra el registro de roles en cada operación.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		principalID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipalID, principalID)
		return c.Next()
	}
}

// GetPrincipalID devuelve el ID del principal del contexto (después del middleware de auth).
func GetPrincipalID(c *fiber.Ctx) string {
	v := c.Locals(LocalPrincipalID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
