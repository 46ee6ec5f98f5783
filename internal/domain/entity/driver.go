package entity

import "time"

// Driver conductor que ejecuta movimientos entre filiales. Document es un CPF.
type Driver struct {
	ID          int64
	FullAddress string
	Document    string
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
