package entity

import "time"

// Product existencia de un producto en una filial. Amount nunca es negativo;
// solo se modifica vía débito/crédito del ledger de inventario.
type Product struct {
	ID          int64
	Name        string
	Amount      int
	Description string
	URLCover    string
	BranchID    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
