package repositories

import (
	"errors"
	"fmt"
	"strings"

	apperrors "employee-portal/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE коды нарушений ограничений PostgreSQL.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgRestrictViolation   = "23001"
)

// classifyConstraint оборачивает ошибку БД в один из сентинелов apperrors.
// Если драйвер отдал PgError, решает код SQLSTATE; иначе - подстроки текста ошибки.
// Неклассифицированные ошибки возвращаются как есть.
func classifyConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", apperrors.ErrDuplicateKey, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", apperrors.ErrForeignKey, err)
		case pgCheckViolation:
			return fmt.Errorf("%w: %w", apperrors.ErrCheckViolation, err)
		case pgRestrictViolation:
			return fmt.Errorf("%w: %w", apperrors.ErrStillReferenced, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate"):
		return fmt.Errorf("%w: %w", apperrors.ErrDuplicateKey, err)
	case strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %w", apperrors.ErrForeignKey, err)
	case strings.Contains(msg, "check"):
		return fmt.Errorf("%w: %w", apperrors.ErrCheckViolation, err)
	case strings.Contains(msg, "restrict") || strings.Contains(msg, "violates"):
		return fmt.Errorf("%w: %w", apperrors.ErrStillReferenced, err)
	}
	return err
}
