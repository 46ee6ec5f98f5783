package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementación del puerto DriverRepository sobre PostgreSQL (usable con pool o tx).
type DriverRepo struct {
	q Querier
}

// NewDriverRepository construye el adaptador de persistencia para conductores.
func NewDriverRepository(q Querier) *DriverRepo {
	return &DriverRepo{q: q}
}

// Create persiste un nuevo conductor y completa el ID generado.
func (r *DriverRepo) Create(driver *entity.Driver) error {
	query := `
		INSERT INTO drivers (full_address, document, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		driver.FullAddress, driver.Document, driver.UserID, driver.CreatedAt, driver.UpdatedAt,
	).Scan(&driver.ID)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}
	return nil
}

// GetByID obtiene un conductor por ID. Devuelve nil si no existe.
func (r *DriverRepo) GetByID(id int64) (*entity.Driver, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByUserID obtiene el conductor vinculado a un usuario (1:1). Devuelve nil si no existe.
func (r *DriverRepo) GetByUserID(userID int64) (*entity.Driver, error) {
	return r.findOne(`WHERE user_id = $1`, userID)
}

func (r *DriverRepo) findOne(where string, arg any) (*entity.Driver, error) {
	query := `
		SELECT id, COALESCE(full_address, ''), document, user_id, created_at, updated_at
		FROM drivers ` + where
	var d entity.Driver
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.FullAddress, &d.Document, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return &d, nil
}
