package dto

import (
	"time"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto en la filial del caller.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Amount      int    `json:"amount" validate:"required,min=0"`
	Description string `json:"description" validate:"required,max=200"`
	URLCover    string `json:"url_cover" validate:"omitempty,max=200"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	URLCover    string    `json:"url_cover,omitempty"`
	BranchID    int64     `json:"branch_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Amount:      p.Amount,
		Description: p.Description,
		URLCover:    p.URLCover,
		BranchID:    p.BranchID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
