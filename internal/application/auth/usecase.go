package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/access"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/jhoicas/Girofle-api/pkg/jwt"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso del directorio de cuentas: login, creación de cuentas
// (con doble barrera admin), listado y verificación del password admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password (búsqueda exacta por username, bcrypt sobre el password),
// genera JWT y retorna token + usuario + navegación del rol. Sin efectos colaterales en fallo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
		Home:  access.HomePage(user.Role),
		Pages: access.Pages(user.Role),
	}, nil
}

// VerifyAdminPassword compara el password contra la cuenta admin del directorio.
// Barrera secundaria (secreto compartido de un solo factor) antes de crear cuentas;
// no es un límite de seguridad y está documentada como tal.
func (uc *AuthUseCase) VerifyAdminPassword(password string) (bool, error) {
	admin, err := uc.userRepo.GetByUsername("admin")
	if err != nil {
		return false, err
	}
	if admin == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil, nil
}

// CreateAccount crea una identidad nueva. Rechaza con ErrUsernameExists si el
// username ya está en el directorio (comparación exacta) sin mutarlo; las cuentas
// collecteur nacen con balance 0, los demás roles no llevan balance.
func (uc *AuthUseCase) CreateAccount(in dto.CreateAccountRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Role == entity.RoleCollecteur {
		zero := decimal.Zero
		user.Balance = &zero
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve el directorio con las credenciales ya eliminadas (solo para mostrar).
func (uc *AuthUseCase) ListUsers(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Navigation devuelve la página de aterrizaje y las páginas visibles del rol.
func (uc *AuthUseCase) Navigation(role string) *dto.PagesResponse {
	return &dto.PagesResponse{
		Home:  access.HomePage(role),
		Pages: access.Pages(role),
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
