package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newUserMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func TestUserGetFirst(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, name, created_at FROM users ORDER BY id ASC LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "created_at"}).
			AddRow(1, "demo@example.com", "Demo", time.Now()))

	user, found, err := repo.GetFirst(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "demo@example.com", user.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetFirst_EmptyTable(t *testing.T) {
	repo, mock := newUserMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users ORDER BY id ASC LIMIT 1`)).
		WillReturnError(sql.ErrNoRows)

	user, found, err := repo.GetFirst(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}
