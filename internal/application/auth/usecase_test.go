package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/catalogo-admin/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "catalogo-admin-test",
	})
	return uc, repo
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:    "nuevo@ejemplo.com",
		Username: "nuevo",
		Password: "contraseña-larga",
	}
}

// El endpoint de registro es público: un registro fresco nunca debe salir
// con rol admin, o el gate de rol del panel sería decorativo.
func TestRegister_AsignaRolCustomer(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, out.Role)
	persisted, _ := repo.FindByEmail("nuevo@ejemplo.com")
	assert.Equal(t, entity.RoleCustomer, persisted.Role,
		"el registro público nunca persiste admin")
}

func TestRegister_TokenDeRegistroFresco_NoLlevaRolAdmin(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "nuevo@ejemplo.com", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, role, err := pkgjwt.Parse(testSecret, login.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, role,
		"el token de un registro fresco no debe pasar RequireRole(admin)")
	assert.NotEqual(t, entity.RoleAdmin, role)
}

func TestRegister_EmailDuplicado_Rechazado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Register(registerRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_PasswordIncorrecta_Unauthorized(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nuevo@ejemplo.com", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo_Forbidden(t *testing.T) {
	uc, repo := newAuthFixture()

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)
	repo.byEmail["nuevo@ejemplo.com"].Status = "blocked"

	_, err = uc.Login(dto.LoginRequest{Email: "nuevo@ejemplo.com", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
