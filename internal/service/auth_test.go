package service_test

import (
	"context"
	"testing"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/config"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/dto"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/model"
	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (service.AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func seedUsuarioConPassword(repo *stubUsuarioRepo, username, password, rol string) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.Usuario{
		ID:           uuid.New(),
		Username:     username,
		Nombre:       username,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	repo.usuarios[u.ID] = u
	return u
}

func TestLogin_OK(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor1",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "vendedor", resp.User.Rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor1",
		Password: "otra",
	})
	require.Error(t, err)
	// Usuario desconocido y password incorrecta responden idéntico.
	assert.ErrorContains(t, err, "Credenciales inválidas")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")
	u.Activo = false

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor1",
		Password: "secreta123",
	})
	assert.ErrorContains(t, err, "Credenciales inválidas")
}

func TestRefresh_OK(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor1",
		Password: "secreta123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "vendedor1", resp.User.Username)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.ErrorContains(t, err, "Refresh token inválido")
}

func TestRefresh_UsuarioDesactivado(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor1",
		Password: "secreta123",
	})
	require.NoError(t, err)

	u.Activo = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorContains(t, err, "inactivo")
}

func TestCrearUsuario_UsernameDuplicado(t *testing.T) {
	svc, repo := buildAuthSvc()
	seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "vendedor1",
		Nombre:   "Otro Vendedor",
		Password: "password123",
		Rol:      "vendedor",
	})
	assert.True(t, apierror.IsValidation(err))
	assert.ErrorContains(t, err, "ya está en uso")
}

func TestCrearUsuario_HashBcrypt(t *testing.T) {
	svc, repo := buildAuthSvc()

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "panadero1",
		Nombre:   "Pedro Panadero",
		Password: "password123",
		Rol:      "panadero",
	})
	require.NoError(t, err)

	stored := repo.usuarios[uuid.MustParse(resp.ID)]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestDesactivarUsuario_LuegoReactivar(t *testing.T) {
	svc, repo := buildAuthSvc()
	u := seedUsuarioConPassword(repo, "vendedor1", "secreta123", "vendedor")

	require.NoError(t, svc.DesactivarUsuario(context.Background(), u.ID))
	assert.False(t, repo.usuarios[u.ID].Activo)

	require.NoError(t, svc.ReactivarUsuario(context.Background(), u.ID))
	assert.True(t, repo.usuarios[u.ID].Activo)
}
