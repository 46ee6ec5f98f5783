package repository

import "github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"

// DriverRepository define el puerto de persistencia para Driver.
// GetByUserID resuelve el conductor vinculado a una identidad (1:1).
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id int64) (*entity.Driver, error)
	GetByUserID(userID int64) (*entity.Driver, error)
}
