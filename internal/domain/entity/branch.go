package entity

import "time"

// Branch filial que posee productos y recibe movimientos. Document es un CNPJ.
type Branch struct {
	ID          int64
	FullAddress string
	Document    string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
