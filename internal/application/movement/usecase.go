package movement

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/access"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/dto"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/inventory"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/repository"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/logger"
)

// UseCase orquesta el workflow de movimientos: crear (con débito de stock),
// listar, iniciar y finalizar (con crédito en destino). Cada operación de
// escritura corre como una unidad de trabajo transaccional vía TxRunner.
type UseCase struct {
	txRunner  TxRunner
	policy    *access.Policy
	ledger    *inventory.Ledger
	branches  repository.BranchRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de movimientos.
func NewUseCase(
	txRunner TxRunner,
	policy *access.Policy,
	ledger *inventory.Ledger,
	branches repository.BranchRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		policy:    policy,
		ledger:    ledger,
		branches:  branches,
		movements: movements,
		log:       log,
	}
}

// Create crea un movimiento PENDING debitando el stock de origen en la misma
// transacción: el stock queda reservado al crear, así creaciones concurrentes
// sobre el mismo producto no pueden sobregirarlo.
// Precondiciones: caller vinculado a una filial, producto de esa filial,
// destino existente y distinto del origen, 0 < cantidad <= stock.
func (uc *UseCase) Create(ctx context.Context, callerID int64, in dto.CreateMovementRequest) (*entity.Movement, error) {
	if in.DestinationBranchID == 0 || in.ProductID == 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if actor.Kind != access.KindBranch {
		return nil, domain.ErrForbidden
	}
	origin := actor.Branch

	if in.DestinationBranchID == origin.ID {
		return nil, domain.ErrInvalidInput
	}
	destination, err := uc.branches.GetByID(in.DestinationBranchID)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, domain.ErrNotFound
	}

	opID := uuid.New().String()
	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(repos repository.Set) error {
		product, err := uc.ledger.Debit(repos.Products, in.ProductID, origin.ID, in.Quantity)
		if err != nil {
			return err
		}
		created = &entity.Movement{
			DestinationBranchID: in.DestinationBranchID,
			ProductID:           product.ID,
			Quantity:            in.Quantity,
			Status:              entity.MovementPending,
		}
		return repos.Movements.Create(created)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("op_id", opID).
		Int64("movement_id", created.ID).
		Int64("origin_branch_id", origin.ID).
		Int64("destination_branch_id", in.DestinationBranchID).
		Int("quantity", in.Quantity).
		Msg("movimiento creado, stock de origen debitado")
	return created, nil
}

// List devuelve todos los movimientos, más reciente primero, con filial de
// destino, producto y conductor resueltos. Solo filiales y conductores; un
// ADMIN o una identidad sin vínculo recibe ErrForbidden.
func (uc *UseCase) List(ctx context.Context, callerID int64) ([]*entity.MovementDetail, error) {
	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if actor.Kind != access.KindBranch && actor.Kind != access.KindDriver {
		return nil, domain.ErrForbidden
	}
	return uc.movements.ListDetailed()
}

// Start transiciona PENDING -> IN_PROGRESS asignando al conductor del caller.
// El claim es condicional y atómico: de N starts concurrentes sobre el mismo
// movimiento exactamente uno gana; los demás ven el estado ya avanzado.
// Un conductor con otro movimiento IN_PROGRESS no puede tomar uno nuevo.
func (uc *UseCase) Start(ctx context.Context, callerID, movementID int64) (*entity.Movement, error) {
	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if actor.Kind != access.KindDriver {
		return nil, domain.ErrForbidden
	}
	driver := actor.Driver

	var claimed *entity.Movement
	err = uc.txRunner.Run(ctx, func(repos repository.Set) error {
		var claimErr error
		claimed, claimErr = repos.Movements.ClaimPending(movementID, driver.ID)
		if claimErr != nil {
			return claimErr
		}
		if claimed != nil {
			return nil
		}
		// El claim falló: releer para clasificar la causa.
		current, err := repos.Movements.GetByID(movementID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if !current.CanStart() {
			return domain.ErrInvalidTransition
		}
		return domain.ErrDriverBusy
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("op_id", uuid.New().String()).
		Int64("movement_id", claimed.ID).
		Int64("driver_id", driver.ID).
		Msg("movimiento iniciado")
	return claimed, nil
}

// Finish transiciona IN_PROGRESS -> FINISHED y acredita el producto en la filial
// de destino, en la misma transacción. Solo el conductor que inició el movimiento
// puede finalizarlo. Devuelve el movimiento y el producto creado en destino.
func (uc *UseCase) Finish(ctx context.Context, callerID, movementID int64) (*entity.Movement, *entity.Product, error) {
	actor, err := uc.policy.Resolve(callerID)
	if err != nil {
		return nil, nil, err
	}
	if actor.Kind != access.KindDriver {
		return nil, nil, domain.ErrForbidden
	}
	driver := actor.Driver

	opID := uuid.New().String()
	var finished *entity.Movement
	var newProduct *entity.Product
	err = uc.txRunner.Run(ctx, func(repos repository.Set) error {
		current, err := repos.Movements.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if !current.CanFinish() {
			return domain.ErrInvalidTransition
		}
		if current.DriverID == nil || *current.DriverID != driver.ID {
			return domain.ErrForbidden
		}

		source, err := repos.Products.GetByID(current.ProductID)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}

		newProduct, err = uc.ledger.Credit(repos.Products, source, current.DestinationBranchID, current.Quantity)
		if err != nil {
			return err
		}
		if err := repos.Movements.UpdateStatus(current.ID, entity.MovementFinished); err != nil {
			return err
		}
		// Releer para que la respuesta refleje la fila persistida (updated_at incluido).
		finished, err = repos.Movements.GetByID(current.ID)
		if err != nil {
			return err
		}
		if finished == nil {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.log.Info().
		Str("op_id", opID).
		Int64("movement_id", finished.ID).
		Int64("driver_id", driver.ID).
		Int64("new_product_id", newProduct.ID).
		Msg("movimiento finalizado, stock acreditado en destino")
	return finished, newProduct, nil
}
