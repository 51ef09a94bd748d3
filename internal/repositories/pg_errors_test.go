package repositories

import (
	"errors"
	"testing"

	apperrors "employee-portal/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyConstraint_SQLState(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{pgUniqueViolation, apperrors.ErrDuplicateKey},
		{pgForeignKeyViolation, apperrors.ErrForeignKey},
		{pgCheckViolation, apperrors.ErrCheckViolation},
		{pgRestrictViolation, apperrors.ErrStillReferenced},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, Message: "constraint failed"}
			err := classifyConstraint(pgErr)
			assert.ErrorIs(t, err, tc.want)

			var unwrapped *pgconn.PgError
			assert.True(t, errors.As(err, &unwrapped), "исходная PgError должна сохраниться в цепочке")
		})
	}
}

func TestClassifyConstraint_MessageFallback(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{`duplicate key value violates unique constraint "employee_pkey"`, apperrors.ErrDuplicateKey},
		{`insert or update on table "employee" violates foreign key constraint "employee_dno_fkey"`, apperrors.ErrForeignKey},
		{`new row for relation "employee" violates check constraint "employee_sex_check"`, apperrors.ErrCheckViolation},
		{`update or delete on table "employee" violates RESTRICT setting`, apperrors.ErrStillReferenced},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, classifyConstraint(errors.New(tc.msg)), tc.want, tc.msg)
	}
}

func TestClassifyConstraint_Unclassified(t *testing.T) {
	boom := errors.New("connection reset by peer")
	assert.Same(t, boom, classifyConstraint(boom))
	assert.Nil(t, classifyConstraint(nil))

	syntax := &pgconn.PgError{Code: "42601", Message: "syntax error at or near \"FROM\""}
	assert.Equal(t, error(syntax), classifyConstraint(syntax))
}
