package inventory

import (
	"time"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

// Ledger aplica los efectos de stock de un movimiento: débito en la filial de
// origen y crédito en la de destino. Las dos mitades conservan la cantidad
// transferida. Debe usarse con repositorios atados a la transacción del caller.
type Ledger struct{}

// NewLedger construye el ledger de inventario.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Debit verifica que el producto pertenezca a la filial y tenga stock suficiente,
// y descuenta la cantidad. Bloquea la fila (SELECT FOR UPDATE) para que débitos
// concurrentes sobre el mismo producto se serialicen y Amount nunca sea negativo.
func (l *Ledger) Debit(products repository.ProductRepository, productID, branchID int64, quantity int) (*entity.Product, error) {
	product, err := products.GetForUpdate(productID, branchID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Amount < quantity {
		return nil, domain.ErrInsufficientStock
	}
	product.Amount -= quantity
	product.UpdatedAt = time.Now()
	if err := products.UpdateAmount(product.ID, product.Amount); err != nil {
		return nil, err
	}
	return product, nil
}

// Credit crea un producto nuevo en la filial de destino copiando los campos
// descriptivos del producto de origen, con Amount igual a la cantidad transferida.
// Siempre crea una fila nueva; nunca incrementa un producto existente.
func (l *Ledger) Credit(products repository.ProductRepository, source *entity.Product, destinationBranchID int64, quantity int) (*entity.Product, error) {
	now := time.Now()
	created := &entity.Product{
		Name:        source.Name,
		Amount:      quantity,
		Description: source.Description,
		URLCover:    source.URLCover,
		BranchID:    destinationBranchID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := products.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}
