package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/alexandrooliveira87/ProjetoModulo2/internal/domain/entity"
	"github.com/alexandrooliveira87/ProjetoModulo2/internal/infrastructure/postgres"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/config"
	"github.com/alexandrooliveira87/ProjetoModulo2/pkg/logger"
)

// Crea el usuario ADMIN inicial si no existe. El alta de usuarios por API
// requiere un ADMIN, así que este seed rompe el huevo y la gallina.
// Env: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD (por defecto admin@admin.com / admin123).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := envOr("SEED_ADMIN_EMAIL", "admin@admin.com")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.User{
		Name:         "Admin",
		Profile:      entity.ProfileAdmin,
		Email:        email,
		PasswordHash: string(hash),
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Int64("id", admin.ID).Str("email", email).Msg("admin creado")
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
