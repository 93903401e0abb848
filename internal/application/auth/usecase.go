package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/custodia-pro/internal/application/dto"
	"github.com/tu-usuario/custodia-pro/internal/domain"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
	"github.com/tu-usuario/custodia-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del boundary: registro y login de
// principals. El token solo identifica al principal; los roles se consultan
// siempre contra el registro de roles en cada operación (revocables en vivo).
type AuthUseCase struct {
	principals repository.PrincipalRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(principals repository.PrincipalRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{principals: principals, jwtCfg: jwtCfg}
}

// Register crea una cuenta de principal: hashea el password con bcrypt y
// persiste. Devuelve ErrEmailYaRegistrado si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.PrincipalResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existing, err := uc.principals.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailYaRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = email
	}
	now := time.Now()
	p := &entity.Principal{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.principals.Create(p); err != nil {
		return nil, err
	}
	return toPrincipalResponse(p), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	p, err := uc.principals.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if p.Status != "active" {
		return nil, domain.ErrAccesoDenegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Principal: *toPrincipalResponse(p)}, nil
}

func toPrincipalResponse(p *entity.Principal) *dto.PrincipalResponse {
	if p == nil {
		return nil
	}
	return &dto.PrincipalResponse{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
