// Файл: seeders/app_user_seeder.go
package seeders

import (
	"context"
	"fmt"

	"employee-portal/pkg/database/postgresql"
)

// Таблица пользователей портала живёт рядом со схемой компании, но принадлежит приложению.
const appUserDDL = `
CREATE TABLE IF NOT EXISTS app_user (
    id            SERIAL PRIMARY KEY,
    username      VARCHAR(150) NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
)`

func ensureAppUserTable(ctx context.Context) error {
	db, err := postgresql.Acquire(ctx)
	if err != nil {
		return err
	}
	if _, err := db.Exec(ctx, appUserDDL); err != nil {
		return fmt.Errorf("не удалось создать таблицу app_user: %w", err)
	}
	return nil
}
