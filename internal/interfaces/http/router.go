package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/auth"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/movement"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/application/product"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ProductUC  *product.UseCase
	MovementUC *movement.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users: solo ADMIN da de alta usuarios (y su filial/conductor vinculado)
	users := protected.Group("/users", RequireProfile(entity.ProfileAdmin))
	userHandler := NewUserHandler(deps.AuthUC)
	users.Post("/", userHandler.Create)

	// Products: solo filiales
	products := protected.Group("/products", RequireProfile(entity.ProfileBranch))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)

	// Movements: crear solo filiales; listar filiales y conductores;
	// start/end solo conductores. La autorización fina (entidad vinculada,
	// conductor correcto) la decide el Access Policy en el use case.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", RequireProfile(entity.ProfileBranch), movementHandler.Create)
	movements.Get("/", RequireProfile(entity.ProfileBranch, entity.ProfileDriver), movementHandler.List)
	movements.Patch("/:id/start", RequireProfile(entity.ProfileDriver), movementHandler.Start)
	movements.Patch("/:id/end", RequireProfile(entity.ProfileDriver), movementHandler.Finish)
}
