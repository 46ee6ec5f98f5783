package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/auth"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/movement"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

// Ensure TxRunner implements movement.TxRunner and auth.TxRunner.
var _ movement.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := repository.Set{
		Users:     NewUserRepository(tx),
		Branches:  NewBranchRepository(tx),
		Drivers:   NewDriverRepository(tx),
		Products:  NewProductRepository(tx),
		Movements: NewMovementRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
