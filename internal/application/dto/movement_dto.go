package dto

import (
	"time"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
)

// CreateMovementRequest entrada para crear un movimiento desde la filial del caller.
type CreateMovementRequest struct {
	DestinationBranchID int64 `json:"destination_branch_id" validate:"required"`
	ProductID           int64 `json:"product_id" validate:"required"`
	Quantity            int   `json:"quantity" validate:"required,min=1"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID                  int64     `json:"id"`
	DestinationBranchID int64     `json:"destination_branch_id"`
	ProductID           int64     `json:"product_id"`
	DriverID            *int64    `json:"driver_id,omitempty"`
	Quantity            int       `json:"quantity"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MovementDetailResponse movimiento con filial de destino, producto y conductor resueltos.
type MovementDetailResponse struct {
	MovementResponse
	DestinationBranch BranchSummary   `json:"destination_branch"`
	Product           ProductResponse `json:"product"`
	Driver            *DriverSummary  `json:"driver,omitempty"`
}

// BranchSummary vista reducida de una filial en listados.
type BranchSummary struct {
	ID          int64  `json:"id"`
	FullAddress string `json:"full_address,omitempty"`
	Document    string `json:"document"`
}

// DriverSummary vista reducida de un conductor en listados.
type DriverSummary struct {
	ID          int64  `json:"id"`
	FullAddress string `json:"full_address,omitempty"`
	Document    string `json:"document"`
}

// FinishMovementResponse salida del cierre de un movimiento: el movimiento FINISHED
// y el producto creado en la filial de destino.
type FinishMovementResponse struct {
	Movement   MovementResponse `json:"movement"`
	NewProduct ProductResponse  `json:"new_product"`
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:                  m.ID,
		DestinationBranchID: m.DestinationBranchID,
		ProductID:           m.ProductID,
		DriverID:            m.DriverID,
		Quantity:            m.Quantity,
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// ToMovementDetailResponse mapea el detalle de un movimiento al DTO de salida.
func ToMovementDetailResponse(d *entity.MovementDetail) *MovementDetailResponse {
	if d == nil {
		return nil
	}
	out := &MovementDetailResponse{
		MovementResponse: *ToMovementResponse(&d.Movement),
		DestinationBranch: BranchSummary{
			ID:          d.DestinationBranch.ID,
			FullAddress: d.DestinationBranch.FullAddress,
			Document:    d.DestinationBranch.Document,
		},
		Product: *ToProductResponse(&d.Product),
	}
	if d.Driver != nil {
		out.Driver = &DriverSummary{
			ID:          d.Driver.ID,
			FullAddress: d.Driver.FullAddress,
			Document:    d.Driver.Document,
		}
	}
	return out
}
