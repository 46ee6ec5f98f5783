package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/dto"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/document"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner transacción para registrar usuario + entidad vinculada como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Set) error) error
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users    repository.UserRepository
	txRunner TxRunner
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, txRunner TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, txRunner: txRunner, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario y, para perfiles DRIVER y BRANCH, la entidad
// vinculada en la misma transacción. El documento se valida por dígito
// verificador: CPF para conductores, CNPJ para filiales.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) RegisterUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Profile == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidProfile(in.Profile) {
		return nil, domain.ErrInvalidInput
	}
	switch in.Profile {
	case entity.ProfileDriver:
		if !document.IsValidCPF(in.Document) {
			return nil, domain.ErrInvalidDocument
		}
	case entity.ProfileBranch:
		if !document.IsValidCNPJ(in.Document) {
			return nil, domain.ErrInvalidDocument
		}
	}

	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Profile:      in.Profile,
		Email:        in.Email,
		PasswordHash: string(hash),
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(repos repository.Set) error {
		if err := repos.Users.Create(user); err != nil {
			return err
		}
		switch in.Profile {
		case entity.ProfileDriver:
			return repos.Drivers.Create(&entity.Driver{
				FullAddress: in.FullAddress,
				Document:    in.Document,
				UserID:      user.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		case entity.ProfileBranch:
			return repos.Branches.Create(&entity.Branch{
				FullAddress: in.FullAddress,
				Document:    in.Document,
				UserID:      user.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password contra el hash bcrypt y genera el JWT con el perfil.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Status {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Profile, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Name:    user.Name,
		Profile: user.Profile,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Profile:   u.Profile,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
