package access

import (
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

// Kind clasifica al caller autenticado. Cada identidad es exactamente una de estas.
type Kind int

const (
	KindUnlinked Kind = iota
	KindBranch
	KindDriver
	KindAdmin
)

// Actor resultado de resolver una identidad: su clase y, si aplica,
// la filial o el conductor vinculado. Se resuelve una sola vez por request.
type Actor struct {
	Kind   Kind
	Branch *entity.Branch
	Driver *entity.Driver
}

// Policy resuelve la entidad vinculada a una identidad autenticada.
type Policy struct {
	users    repository.UserRepository
	branches repository.BranchRepository
	drivers  repository.DriverRepository
}

// NewPolicy construye la política de acceso.
func NewPolicy(users repository.UserRepository, branches repository.BranchRepository, drivers repository.DriverRepository) *Policy {
	return &Policy{users: users, branches: branches, drivers: drivers}
}

// Resolve clasifica al caller según su perfil y su entidad vinculada.
// Un perfil BRANCH/DRIVER sin fila vinculada queda como Unlinked: la ruta
// correspondiente responderá 403 sin tratarlo como fallo duro.
func (p *Policy) Resolve(userID int64) (Actor, error) {
	user, err := p.users.GetByID(userID)
	if err != nil {
		return Actor{}, err
	}
	if user == nil || !user.Status {
		return Actor{Kind: KindUnlinked}, nil
	}

	switch user.Profile {
	case entity.ProfileAdmin:
		return Actor{Kind: KindAdmin}, nil
	case entity.ProfileBranch:
		branch, err := p.branches.GetByUserID(userID)
		if err != nil {
			return Actor{}, err
		}
		if branch == nil {
			return Actor{Kind: KindUnlinked}, nil
		}
		return Actor{Kind: KindBranch, Branch: branch}, nil
	case entity.ProfileDriver:
		driver, err := p.drivers.GetByUserID(userID)
		if err != nil {
			return Actor{}, err
		}
		if driver == nil {
			return Actor{Kind: KindUnlinked}, nil
		}
		return Actor{Kind: KindDriver, Driver: driver}, nil
	}
	return Actor{Kind: KindUnlinked}, nil
}
