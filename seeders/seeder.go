package seeders

import (
	"context"
	"fmt"
	"log"

	"employee-portal/internal/repositories"
	"employee-portal/pkg/database/postgresql"
	"employee-portal/pkg/utils"

	"go.uber.org/zap"
)

// SeedAppUser создаёт учётную запись портала или меняет ей пароль.
func SeedAppUser(ctx context.Context, provider *postgresql.Provider, username, password string, logger *zap.Logger) (int64, error) {
	if username == "" || password == "" {
		return 0, fmt.Errorf("нужны имя пользователя и пароль")
	}

	log.Printf("▶️  Создание пользователя портала %q...", username)

	ctx = provider.Open(ctx)
	defer postgresql.Release(ctx)

	if err := ensureAppUserTable(ctx); err != nil {
		return 0, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := repositories.NewUserRepository(logger).UpsertUser(ctx, username, hash)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить пользователя: %w", err)
	}
	log.Printf("✅ Пользователь %q готов (id=%d)", username, id)
	return id, nil
}
