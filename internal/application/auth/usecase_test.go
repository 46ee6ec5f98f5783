package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/auth"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/dto"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/jwt"
)

type memState struct {
	users    []*entity.User
	branches []*entity.Branch
	drivers  []*entity.Driver
	nextID   int64
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

type memUsers struct{ s *memState }

func (r memUsers) Create(u *entity.User) error {
	u.ID = r.s.id()
	r.s.users = append(r.s.users, u)
	return nil
}

func (r memUsers) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUsers) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memBranches struct{ s *memState }

func (r memBranches) Create(b *entity.Branch) error {
	b.ID = r.s.id()
	r.s.branches = append(r.s.branches, b)
	return nil
}

func (r memBranches) GetByID(id int64) (*entity.Branch, error) { return nil, nil }

func (r memBranches) GetByUserID(userID int64) (*entity.Branch, error) {
	for _, b := range r.s.branches {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, nil
}

type memDrivers struct{ s *memState }

func (r memDrivers) Create(d *entity.Driver) error {
	d.ID = r.s.id()
	r.s.drivers = append(r.s.drivers, d)
	return nil
}

func (r memDrivers) GetByID(id int64) (*entity.Driver, error) { return nil, nil }

func (r memDrivers) GetByUserID(userID int64) (*entity.Driver, error) {
	for _, d := range r.s.drivers {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

type memTxRunner struct{ s *memState }

func (t memTxRunner) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	return fn(repository.Set{
		Users:    memUsers{t.s},
		Branches: memBranches{t.s},
		Drivers:  memDrivers{t.s},
	})
}

func newUseCase() (*auth.UseCase, *memState) {
	s := &memState{}
	uc := auth.NewUseCase(memUsers{s}, memTxRunner{s}, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "movements-api-test",
	})
	return uc, s
}

func driverRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Juan Conductor",
		Profile:  entity.ProfileDriver,
		Email:    "juan@test.com",
		Password: "secret123",
		Document: "529.982.247-25",
	}
}

func TestRegisterUser_ConductorConEntidadVinculada(t *testing.T) {
	uc, s := newUseCase()

	resp, err := uc.RegisterUser(context.Background(), driverRequest())

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileDriver, resp.Profile)
	assert.True(t, resp.Status)

	require.Len(t, s.drivers, 1)
	assert.Equal(t, resp.ID, s.drivers[0].UserID)
	assert.Equal(t, "529.982.247-25", s.drivers[0].Document)

	// El password queda hasheado, nunca en claro
	user, _ := memUsers{s}.GetByEmail("juan@test.com")
	require.NotNil(t, user)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterUser_FilialConCNPJ(t *testing.T) {
	uc, s := newUseCase()

	_, err := uc.RegisterUser(context.Background(), dto.CreateUserRequest{
		Name:        "Filial Centro",
		Profile:     entity.ProfileBranch,
		Email:       "centro@test.com",
		Password:    "secret123",
		Document:    "11.222.333/0001-81",
		FullAddress: "Av. Central 100",
	})

	require.NoError(t, err)
	require.Len(t, s.branches, 1)
	assert.Equal(t, "Av. Central 100", s.branches[0].FullAddress)
}

func TestRegisterUser_AdminSinDocumento(t *testing.T) {
	uc, s := newUseCase()

	resp, err := uc.RegisterUser(context.Background(), dto.CreateUserRequest{
		Name:     "Root",
		Profile:  entity.ProfileAdmin,
		Email:    "root@test.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ProfileAdmin, resp.Profile)
	assert.Empty(t, s.branches)
	assert.Empty(t, s.drivers)
}

func TestRegisterUser_DocumentoInvalido(t *testing.T) {
	uc, _ := newUseCase()

	in := driverRequest()
	in.Document = "529.982.247-99" // dígito verificador incorrecto
	_, err := uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = uc.RegisterUser(context.Background(), dto.CreateUserRequest{
		Name:     "Filial",
		Profile:  entity.ProfileBranch,
		Email:    "filial@test.com",
		Password: "secret123",
		Document: "11.222.333/0001-00",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.RegisterUser(context.Background(), driverRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), driverRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_CamposObligatorios(t *testing.T) {
	uc, _ := newUseCase()

	cases := []dto.CreateUserRequest{
		{Profile: entity.ProfileAdmin, Email: "a@test.com", Password: "x"},
		{Name: "A", Email: "a@test.com", Password: "x"},
		{Name: "A", Profile: entity.ProfileAdmin, Password: "x"},
		{Name: "A", Profile: entity.ProfileAdmin, Email: "a@test.com"},
		{Name: "A", Profile: "MANAGER", Email: "a@test.com", Password: "x"},
	}
	for _, in := range cases {
		_, err := uc.RegisterUser(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestLogin_TokenConPerfil(t *testing.T) {
	uc, _ := newUseCase()
	resp, err := uc.RegisterUser(context.Background(), driverRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "juan@test.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "Juan Conductor", out.Name)
	assert.Equal(t, entity.ProfileDriver, out.Profile)

	userID, profile, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)
	assert.Equal(t, entity.ProfileDriver, profile)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), driverRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "juan@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, s := newUseCase()
	_, err := uc.RegisterUser(context.Background(), driverRequest())
	require.NoError(t, err)
	s.users[0].Status = false

	_, err = uc.Login(dto.LoginRequest{Email: "juan@test.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
