package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para filiales.
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persiste una nueva filial y completa el ID generado.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (full_address, document, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		branch.FullAddress, branch.Document, branch.UserID, branch.CreatedAt, branch.UpdatedAt,
	).Scan(&branch.ID)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una filial por ID. Devuelve nil si no existe.
func (r *BranchRepo) GetByID(id int64) (*entity.Branch, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByUserID obtiene la filial vinculada a un usuario (1:1). Devuelve nil si no existe.
func (r *BranchRepo) GetByUserID(userID int64) (*entity.Branch, error) {
	return r.findOne(`WHERE user_id = $1`, userID)
}

func (r *BranchRepo) findOne(where string, arg any) (*entity.Branch, error) {
	query := `
		SELECT id, COALESCE(full_address, ''), document, user_id, created_at, updated_at
		FROM branches ` + where
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&b.ID, &b.FullAddress, &b.Document, &b.UserID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}
