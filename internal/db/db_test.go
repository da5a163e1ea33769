package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"memberdesk/internal/api"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestWrapError(t *testing.T) {
	errMissing := fmt.Errorf("widget %w", api.ErrNotFound)

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, errMissing))
	})

	t.Run("no rows becomes not found", func(t *testing.T) {
		err := WrapError(sql.ErrNoRows, errMissing)
		assert.ErrorIs(t, err, api.ErrNotFound)
		assert.Equal(t, "widget not found", err.Error())
	})

	t.Run("unique violation becomes field conflict", func(t *testing.T) {
		err := WrapError(&pq.Error{Code: "23505", Constraint: "users_tenant_mobile_key"}, errMissing)
		assert.ErrorIs(t, err, api.ErrConflict)

		var apiErr *api.Error
		require.True(t, errors.As(err, &apiErr))
		require.Len(t, apiErr.Details, 1)
		assert.Equal(t, "MobileNo", apiErr.Details[0].Field)
	})

	t.Run("unknown constraint keeps its name", func(t *testing.T) {
		err := WrapError(&pq.Error{Code: "23505", Constraint: "widgets_code_key"}, nil)

		var apiErr *api.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "widgets_code", apiErr.Details[0].Field)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		assert.Equal(t, boom, WrapError(boom, errMissing))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "attendance_tenant_user_day_key"}

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "attendance_tenant_user_day_key"))
	assert.False(t, IsUniqueViolation(err, "users_tenant_mobile_key"))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("plain"), ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestExists(t *testing.T) {
	dbx, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("T1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := Exists(context.Background(), dbx, `SELECT EXISTS(SELECT 1 FROM tenants WHERE id = $1)`, "T1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		dbx, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE widgets`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := WithTx(context.Background(), dbx, func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`UPDATE widgets SET name = 'x'`)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		dbx, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := WithTx(context.Background(), dbx, func(tx *sqlx.Tx) error {
			return boom
		})
		assert.Equal(t, boom, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
