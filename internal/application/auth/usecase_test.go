package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/custodia-pro/internal/application/auth"
	"github.com/tu-usuario/custodia-pro/internal/application/dto"
	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/memory"
	pkgjwt "github.com/tu-usuario/custodia-pro/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) (*memory.Store, *auth.AuthUseCase) {
	t.Helper()
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(store.Principals(), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "custodia-pro-test",
	})
	return store, uc
}

func TestRegister_Exitoso(t *testing.T) {
	_, uc := newAuthUC(t)

	p, err := uc.Register(dto.RegisterRequest{
		Email:    "Acme@Ejemplo.com",
		Password: "secreto123",
		Name:     "Acme S.A.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "acme@ejemplo.com", p.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, "Acme S.A.", p.Name)
	assert.Equal(t, "active", p.Status)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	_, uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ACME@ejemplo.com", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrEmailYaRegistrado,
		"el duplicado se detecta sin distinguir mayúsculas")
}

func TestRegister_EntradaInvalida(t *testing.T) {
	_, uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "  ", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Register(dto.RegisterRequest{Email: "acme@ejemplo.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin_Exitoso(t *testing.T) {
	_, uc := newAuthUC(t)

	reg, err := uc.Register(dto.RegisterRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.Principal.ID)

	// El token identifica al principal y no lleva nada más.
	principalID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, principalID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	_, uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "acme@ejemplo.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrNoAutorizado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	_, uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

func TestLogin_CuentaDeshabilitada(t *testing.T) {
	store, uc := newAuthUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Principals().Create(&entity.Principal{
		ID:           "p-1",
		Email:        "baja@ejemplo.com",
		PasswordHash: string(hash),
		Name:         "Cuenta de baja",
		Status:       "disabled",
	}))

	_, err = uc.Login(dto.LoginRequest{Email: "baja@ejemplo.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrAccesoDenegado)
}

func TestLogin_NoRevelaHash(t *testing.T) {
	_, uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "acme@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotContains(t, out.Token, "secreto123")
}
