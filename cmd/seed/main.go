// seed otorga un rol a un principal directamente sobre PostgreSQL, sin pasar
// por la API. Útil para el arranque inicial: otorgar 'admin' al primer
// principal, que luego administra el resto de roles vía /api/admin.
//
// Uso: go run ./cmd/seed <principal-id> [rol]
// Por defecto otorga el rol 'admin'. Lee la conexión de las mismas variables
// de entorno que la API (DB_HOST, DATABASE_URL, etc.).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/custodia-pro/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed <principal-id> [rol]")
		os.Exit(1)
	}
	principalID := os.Args[1]
	role := entity.RoleAdmin
	if len(os.Args) > 2 {
		role = entity.Role(os.Args[2])
	}
	if !role.Valid() {
		fmt.Fprintf(os.Stderr, "Rol desconocido: %s\n", role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	roles := postgres.NewRoleRepository(pool)
	if err := roles.Grant(principalID, role); err != nil {
		fmt.Fprintf(os.Stderr, "Otorgar rol: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rol '%s' otorgado a %s\n", role, principalID)
}
