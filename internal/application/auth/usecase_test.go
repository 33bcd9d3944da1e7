package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Girofle-api/internal/application/auth"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/access"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/infrastructure/memory"
)

const testAdminPassword = "admin123"

// directorioSembrado construye el caso de uso sobre el directorio fijo inicial.
func directorioSembrado(t *testing.T) (*auth.AuthUseCase, *memory.UserRepo) {
	t.Helper()
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Seed(testAdminPassword))
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "girofle-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminConPasswordCorrecto(t *testing.T) {
	uc, _ := directorioSembrado(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: testAdminPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.Equal(t, access.PageDashboard, out.Home, "admin aterriza en el dashboard")
	assert.Contains(t, out.Pages, access.PageComptes)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := directorioSembrado(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := directorioSembrado(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsernameEsCaseSensitive(t *testing.T) {
	uc, _ := directorioSembrado(t)

	// La búsqueda es exacta: "Admin" no es "admin".
	_, err := uc.Login(dto.LoginRequest{Username: "Admin", Password: testAdminPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_NavegacionPorRol(t *testing.T) {
	uc, _ := directorioSembrado(t)

	out, err := uc.Login(dto.LoginRequest{Username: "rakoto", Password: "rakoto123"})
	require.NoError(t, err)
	assert.Equal(t, access.PageCollecte, out.Home)
	assert.Equal(t, []string{access.PageCollecte}, out.Pages)

	out, err = uc.Login(dto.LoginRequest{Username: "solofo", Password: "solofo123"})
	require.NoError(t, err)
	assert.Equal(t, access.PageExpedition, out.Home, "distillateur aterriza en expédition")

	out, err = uc.Login(dto.LoginRequest{Username: "hanta", Password: "hanta123"})
	require.NoError(t, err)
	assert.Equal(t, access.PageReception, out.Home)
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyAdminPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyAdminPassword(t *testing.T) {
	uc, _ := directorioSembrado(t)

	ok, err := uc.VerifyAdminPassword(testAdminPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.VerifyAdminPassword("equivocado")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAdminPassword_SinCuentaAdmin(t *testing.T) {
	repo := memory.NewUserRepository() // sin sembrar
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "s", ExpMinutes: 60, Issuer: "t"})

	ok, err := uc.VerifyAdminPassword("lo-que-sea")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateAccount
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_CollecteurNaceConBalanceCero(t *testing.T) {
	uc, _ := directorioSembrado(t)

	out, err := uc.CreateAccount(dto.CreateAccountRequest{
		Username: "naina", Password: "naina123", Name: "Naina Ravelo", Role: entity.RoleCollecteur,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Balance, "collecteur lleva balance")
	assert.True(t, out.Balance.IsZero())
}

func TestCreateAccount_OtrosRolesSinBalance(t *testing.T) {
	uc, _ := directorioSembrado(t)

	out, err := uc.CreateAccount(dto.CreateAccountRequest{
		Username: "vola", Password: "vola123", Role: entity.RoleVendeur,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Balance)
	assert.Equal(t, "vola", out.Name, "sin nombre explícito se usa el username")
}

func TestCreateAccount_UsernameDuplicado(t *testing.T) {
	uc, repo := directorioSembrado(t)
	antes, err := repo.Count()
	require.NoError(t, err)

	_, err = uc.CreateAccount(dto.CreateAccountRequest{
		Username: "rakoto", Password: "otro", Role: entity.RoleCollecteur,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	despues, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, antes, despues, "el rechazo no muta el directorio")
}

func TestCreateAccount_RolDesconocido(t *testing.T) {
	uc, _ := directorioSembrado(t)

	_, err := uc.CreateAccount(dto.CreateAccountRequest{
		Username: "x", Password: "x123456", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateAccount_PasswordQuedaHasheado(t *testing.T) {
	uc, repo := directorioSembrado(t)

	_, err := uc.CreateAccount(dto.CreateAccountRequest{
		Username: "naina", Password: "naina123", Role: entity.RoleDistillateur,
	})
	require.NoError(t, err)

	u, err := repo.GetByUsername("naina")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEqual(t, "naina123", u.PasswordHash, "nunca se guarda el password en claro")

	// Y el login con el password original funciona.
	_, err = uc.Login(dto.LoginRequest{Username: "naina", Password: "naina123"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListUsers / Navigation
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_SinCredenciales(t *testing.T) {
	uc, _ := directorioSembrado(t)

	out, err := uc.ListUsers(20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 4, "el directorio fijo tiene cuatro cuentas")

	// El orden de inserción se conserva.
	assert.Equal(t, "admin", out.Items[0].Username)
	assert.Equal(t, "rakoto", out.Items[1].Username)

	for _, u := range out.Items {
		if u.Role == entity.RoleCollecteur {
			assert.NotNil(t, u.Balance, "collecteur muestra su balance")
		} else {
			assert.Nil(t, u.Balance)
		}
	}
}

func TestNavigation_SinRol(t *testing.T) {
	uc, _ := directorioSembrado(t)

	nav := uc.Navigation("")
	assert.Equal(t, access.PageLogin, nav.Home)
	assert.Empty(t, nav.Pages)
}
