package product

import (
	"context"
	"time"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/access"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/dto"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

// UseCase productos de la filial del caller: alta y listado.
type UseCase struct {
	policy   *access.Policy
	products repository.ProductRepository
}

// NewUseCase construye el caso de uso de productos.
func NewUseCase(policy *access.Policy, products repository.ProductRepository) *UseCase {
	return &UseCase{policy: policy, products: products}
}

// Create crea un producto en la filial vinculada al caller.
func (uc *UseCase) Create(ctx context.Context, callerID int64, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Description == "" || in.Amount < 0 {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if actor.Kind != access.KindBranch {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Amount:      in.Amount,
		Description: in.Description,
		URLCover:    in.URLCover,
		BranchID:    actor.Branch.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List devuelve los productos de la filial vinculada al caller.
func (uc *UseCase) List(ctx context.Context, callerID int64) ([]*entity.Product, error) {
	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if actor.Kind != access.KindBranch {
		return nil, domain.ErrForbidden
	}
	return uc.products.ListByBranch(actor.Branch.ID)
}
