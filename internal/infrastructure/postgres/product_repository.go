package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, amount, description, COALESCE(url_cover, ''), branch_id, created_at, updated_at`

// Create persiste un nuevo producto y completa el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, amount, description, url_cover, branch_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Amount, product.Description, product.URLCover,
		product.BranchID, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el producto de esa filial y bloquea la fila (SELECT FOR UPDATE)
// para que débitos concurrentes se serialicen. Devuelve nil si el producto no existe
// o no pertenece a la filial.
func (r *ProductRepo) GetForUpdate(id, branchID int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND branch_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, branchID))
}

// UpdateAmount actualiza la cantidad en stock de un producto.
func (r *ProductRepo) UpdateAmount(id int64, amount int) error {
	query := `UPDATE products SET amount = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, amount)
	if err != nil {
		return fmt.Errorf("update product amount: %w", err)
	}
	return nil
}

// ListByBranch devuelve los productos de una filial, más reciente primero.
func (r *ProductRepo) ListByBranch(branchID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE branch_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Amount, &p.Description, &p.URLCover, &p.BranchID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Amount, &p.Description, &p.URLCover, &p.BranchID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
