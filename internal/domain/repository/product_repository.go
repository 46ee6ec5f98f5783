package repository

import "github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// El campo Amount solo se modifica a través del ledger (GetForUpdate + UpdateAmount
// dentro de una transacción).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto de esa filial (SELECT FOR UPDATE).
	// Devuelve nil si el producto no existe o no pertenece a la filial.
	GetForUpdate(id, branchID int64) (*entity.Product, error)
	UpdateAmount(id int64, amount int) error
	ListByBranch(branchID int64) ([]*entity.Product, error)
}
