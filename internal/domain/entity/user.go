package entity

import "time"

// Perfiles de usuario. Cada usuario BRANCH o DRIVER está vinculado 1:1
// a su filial o conductor; ADMIN no tiene entidad vinculada.
const (
	ProfileDriver = "DRIVER"
	ProfileBranch = "BRANCH"
	ProfileAdmin  = "ADMIN"
)

// ValidProfile indica si el perfil es uno de los soportados.
func ValidProfile(p string) bool {
	return p == ProfileDriver || p == ProfileBranch || p == ProfileAdmin
}

// User identidad autenticable de la aplicación. PasswordHash nunca sale en respuestas.
type User struct {
	ID           int64
	Name         string
	Profile      string // DRIVER | BRANCH | ADMIN
	Email        string
	PasswordHash string
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
