package movement

import (
	"context"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para cada unidad de trabajo del workflow:
// o se aplican todos los efectos (débito + movimiento, o crédito + estado) o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Set) error) error
}
