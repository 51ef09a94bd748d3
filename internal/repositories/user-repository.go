package repositories

import (
	"context"
	"errors"
	"fmt"

	"employee-portal/internal/entities"
	apperrors "employee-portal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	FindUserByUsername(ctx context.Context, username string) (*entities.AppUser, error)
	UpsertUser(ctx context.Context, username, passwordHash string) (int64, error)
}

type UserRepository struct {
	logger *zap.Logger
}

func NewUserRepository(logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{logger: logger}
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.AppUser, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	user := entities.AppUser{Username: username}
	err = db.QueryRow(ctx, `SELECT id, password_hash FROM app_user WHERE username = $1`, username).
		Scan(&user.ID, &user.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска пользователя: %w", err)
	}
	return &user, nil
}

// UpsertUser используется сидером: создаёт пользователя или меняет ему хеш пароля.
func (r *UserRepository) UpsertUser(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := inRequestTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO app_user (username, password_hash)
			VALUES ($1, $2)
			ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
			RETURNING id`, username, passwordHash).Scan(&id)
	})
	if err != nil {
		return 0, classifyConstraint(err)
	}
	r.logger.Info("пользователь сохранён", zap.String("username", username), zap.Int64("id", id))
	return id, nil
}
