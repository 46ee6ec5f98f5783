package repository

import "github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	// GetForUpdate bloquea la fila del movimiento (SELECT FOR UPDATE).
	GetForUpdate(id int64) (*entity.Movement, error)
	// ClaimPending intenta la transición PENDING -> IN_PROGRESS asignando el conductor,
	// de forma condicional y atómica: solo gana si el movimiento sigue PENDING y el
	// conductor no tiene otro movimiento IN_PROGRESS. Devuelve nil si la condición falla;
	// devuelve ErrDriverBusy si la restricción de conductor único activo se viola
	// bajo claims concurrentes del mismo conductor.
	ClaimPending(id, driverID int64) (*entity.Movement, error)
	UpdateStatus(id int64, status string) error
	// ListDetailed devuelve todos los movimientos, más reciente primero, con la filial
	// de destino, el producto y el conductor resueltos.
	ListDetailed() ([]*entity.MovementDetail, error)
}
