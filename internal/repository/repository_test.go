package repository

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	onMaterial := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: materialOpenConstraint}
	require.True(t, isUniqueViolation(onMaterial, materialOpenConstraint))
	require.True(t, isUniqueViolation(errors.Wrap(onMaterial, "insert loan"), materialOpenConstraint))

	// a loan_uid collision is not a material conflict
	onUid := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "loans_loan_uid_key"}
	require.False(t, isUniqueViolation(onUid, materialOpenConstraint))

	notUnique := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: materialOpenConstraint}
	require.False(t, isUniqueViolation(notUnique, materialOpenConstraint))

	require.False(t, isUniqueViolation(errors.New("db down"), materialOpenConstraint))
}
