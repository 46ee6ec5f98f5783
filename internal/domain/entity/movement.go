package entity

import "time"

// Estados del ciclo de vida de un movimiento.
// PENDING -> IN_PROGRESS -> FINISHED; ninguna otra transición es legal.
const (
	MovementPending    = "PENDING"
	MovementInProgress = "IN_PROGRESS"
	MovementFinished   = "FINISHED"
)

// ValidTransition indica si el cambio de estado from -> to es legal.
func ValidTransition(from, to string) bool {
	switch from {
	case MovementPending:
		return to == MovementInProgress
	case MovementInProgress:
		return to == MovementFinished
	default:
		return false
	}
}

// Movement transferencia de un único producto entre dos filiales.
// El stock de origen se debita al crearlo; DriverID se asigna recién al iniciarlo.
type Movement struct {
	ID                  int64
	DestinationBranchID int64
	ProductID           int64
	DriverID            *int64
	Quantity            int
	Status              string // PENDING | IN_PROGRESS | FINISHED
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CanStart indica si el movimiento puede pasar a IN_PROGRESS.
func (m *Movement) CanStart() bool {
	return ValidTransition(m.Status, MovementInProgress)
}

// CanFinish indica si el movimiento puede pasar a FINISHED.
func (m *Movement) CanFinish() bool {
	return ValidTransition(m.Status, MovementFinished)
}

// MovementDetail movimiento con la filial de destino, el producto y el conductor resueltos (para listados).
type MovementDetail struct {
	Movement
	DestinationBranch Branch
	Product           Product
	Driver            *Driver
}
