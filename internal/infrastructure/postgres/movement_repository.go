package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, destination_branch_id, product_id, driver_id, quantity, status, created_at, updated_at`

// Create persiste un nuevo movimiento y completa ID y timestamps generados.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (destination_branch_id, product_id, quantity, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.DestinationBranchID, movement.ProductID, movement.Quantity, movement.Status,
	).Scan(&movement.ID, &movement.CreatedAt, &movement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un movimiento y bloquea la fila (SELECT FOR UPDATE).
func (r *MovementRepo) GetForUpdate(id int64) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ClaimPending transición condicional y atómica PENDING -> IN_PROGRESS.
// El UPDATE solo afecta la fila si sigue PENDING y el conductor no tiene otro
// movimiento IN_PROGRESS; de N claims concurrentes exactamente uno gana.
// Devuelve nil si la condición falla (el caller relee para clasificar la causa).
// El NOT EXISTS no alcanza bajo READ COMMITTED cuando el mismo conductor
// reclama dos movimientos distintos a la vez: ninguna tx ve la fila
// IN_PROGRESS no confirmada de la otra. El índice parcial único
// uq_movements_driver_in_progress cierra esa ventana; su violación (23505)
// se mapea a ErrDriverBusy.
func (r *MovementRepo) ClaimPending(id, driverID int64) (*entity.Movement, error) {
	query := `
		UPDATE movements
		SET status = $3, driver_id = $2, updated_at = now()
		WHERE id = $1
		  AND status = $4
		  AND NOT EXISTS (
			SELECT 1 FROM movements WHERE driver_id = $2 AND status = $3
		  )
		RETURNING ` + movementColumns
	m, err := r.scanOne(r.q.QueryRow(context.Background(), query,
		id, driverID, entity.MovementInProgress, entity.MovementPending,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDriverBusy
		}
		return nil, fmt.Errorf("claim movement: %w", err)
	}
	return m, nil
}

// UpdateStatus actualiza el estado de un movimiento.
func (r *MovementRepo) UpdateStatus(id int64, status string) error {
	query := `UPDATE movements SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	return nil
}

// ListDetailed devuelve todos los movimientos, más reciente primero, con la filial
// de destino, el producto y el conductor resueltos en un solo query.
func (r *MovementRepo) ListDetailed() ([]*entity.MovementDetail, error) {
	query := `
		SELECT m.id, m.destination_branch_id, m.product_id, m.driver_id, m.quantity, m.status,
		       m.created_at, m.updated_at,
		       b.id, COALESCE(b.full_address, ''), b.document,
		       p.id, p.name, p.amount, p.description, COALESCE(p.url_cover, ''), p.branch_id,
		       p.created_at, p.updated_at,
		       d.id, COALESCE(d.full_address, ''), d.document
		FROM movements m
		JOIN branches b ON b.id = m.destination_branch_id
		JOIN products p ON p.id = m.product_id
		LEFT JOIN drivers d ON d.id = m.driver_id
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementDetail
	for rows.Next() {
		var det entity.MovementDetail
		var driverID *int64
		var drvID *int64
		var drvAddress, drvDocument *string
		err := rows.Scan(
			&det.ID, &det.DestinationBranchID, &det.ProductID, &driverID, &det.Quantity, &det.Status,
			&det.CreatedAt, &det.UpdatedAt,
			&det.DestinationBranch.ID, &det.DestinationBranch.FullAddress, &det.DestinationBranch.Document,
			&det.Product.ID, &det.Product.Name, &det.Product.Amount, &det.Product.Description,
			&det.Product.URLCover, &det.Product.BranchID, &det.Product.CreatedAt, &det.Product.UpdatedAt,
			&drvID, &drvAddress, &drvDocument,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		det.DriverID = driverID
		if drvID != nil {
			det.Driver = &entity.Driver{ID: *drvID}
			if drvAddress != nil {
				det.Driver.FullAddress = *drvAddress
			}
			if drvDocument != nil {
				det.Driver.Document = *drvDocument
			}
		}
		list = append(list, &det)
	}
	return list, rows.Err()
}

func (r *MovementRepo) scanOne(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(&m.ID, &m.DestinationBranchID, &m.ProductID, &m.DriverID, &m.Quantity, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}
