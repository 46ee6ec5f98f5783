package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/dto"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/movement"
)

// MovementHandler maneja las peticiones HTTP del workflow de movimientos.
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Crear movimiento (debita el stock de origen)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "destination_branch_id, product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(created))
}

// List godoc
// @Summary      Listar movimientos (filiales y conductores)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MovementDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	out := make([]*dto.MovementDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.ToMovementDetailResponse(d))
	}
	return c.JSON(fiber.Map{"movements": out})
}

// Start godoc
// @Summary      Iniciar movimiento (PENDING -> IN_PROGRESS, asigna al conductor)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /movements/{id}/start [patch]
func (h *MovementHandler) Start(c *fiber.Ctx) error {
	id, err := movementID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	started, err := h.uc.Start(c.Context(), GetUserID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToMovementResponse(started))
}

// Finish godoc
// @Summary      Finalizar movimiento (IN_PROGRESS -> FINISHED, acredita en destino)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.FinishMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movements/{id}/end [patch]
func (h *MovementHandler) Finish(c *fiber.Ctx) error {
	id, err := movementID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	finished, newProduct, err := h.uc.Finish(c.Context(), GetUserID(c), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.FinishMovementResponse{
		Movement:   *dto.ToMovementResponse(finished),
		NewProduct: *dto.ToProductResponse(newProduct),
	})
}

func movementID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
