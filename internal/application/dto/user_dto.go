package dto

import "time"

// CreateUserRequest entrada para crear un usuario (solo ADMIN).
// Para perfiles DRIVER y BRANCH, Document y FullAddress crean la entidad vinculada:
// CPF para conductores, CNPJ para filiales.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Profile     string `json:"profile" validate:"required,oneof=DRIVER BRANCH ADMIN"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Document    string `json:"document" validate:"omitempty,max=30"`
	FullAddress string `json:"full_address" validate:"omitempty,max=255"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Profile   string    `json:"profile"`
	Email     string    `json:"email"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, nombre y perfil del usuario.
type LoginResponse struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	Profile string `json:"profile"`
}
