package repository

import "github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch.
// GetByUserID resuelve la filial vinculada a una identidad (1:1).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id int64) (*entity.Branch, error)
	GetByUserID(userID int64) (*entity.Branch, error)
}
