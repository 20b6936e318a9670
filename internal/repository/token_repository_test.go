package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db, mock
}

func TestTokenRepository_GetOrCreate_ReturnsExisting(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTokenRepository(db)

	rows := sqlmock.NewRows([]string{"key", "user_id"}).
		AddRow("existing-token", 7)
	mock.ExpectQuery("SELECT .* FROM `auth_tokens` WHERE user_id = .*").
		WillReturnRows(rows)

	token, err := repo.GetOrCreate(7)
	require.NoError(t, err)
	require.Equal(t, "existing-token", token.Key)
	require.Equal(t, uint64(7), token.UserID)

	// No INSERT expectation: an existing token must be reused.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_GetOrCreate_MintsWhenAbsent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery("SELECT .* FROM `auth_tokens` WHERE user_id = .*").
		WillReturnRows(sqlmock.NewRows([]string{"key", "user_id"}))
	mock.ExpectExec("INSERT INTO `auth_tokens`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	token, err := repo.GetOrCreate(7)
	require.NoError(t, err)
	require.NotEmpty(t, token.Key)
	require.Equal(t, uint64(7), token.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteByKey_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectExec("DELETE FROM `auth_tokens`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByKey("missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
