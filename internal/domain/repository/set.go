package repository

// Set agrupa los repositorios atados a una misma transacción.
// El TxRunner de infraestructura entrega un Set por unidad de trabajo.
type Set struct {
	Users     UserRepository
	Branches  BranchRepository
	Drivers   DriverRepository
	Products  ProductRepository
	Movements MovementRepository
}
