package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestUserRepository_Create_OK(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	user := &model.User{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", PasswordHash: "hash"}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, uint(11), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'joe@smith.com' for key 'idx_users_email_address'"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.User{EmailAddress: "joe@smith.com", PasswordHash: "hash"})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_InternalError(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.User{EmailAddress: "joe@smith.com"})

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email_address = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email_address", "password"}).
			AddRow(3, "Joe", "Smith", "joe@smith.com", "hash"))

	user, err := repo.FindByEmail(context.Background(), "joe@smith.com")

	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewUserRepository(gdb)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE email_address = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@smith.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
