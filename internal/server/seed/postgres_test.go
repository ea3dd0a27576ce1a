package seed

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSourceWithMock(t *testing.T) (*PostgresSource, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresSource(db), mock
}

func TestPostgresSource_Load(t *testing.T) {
	src, mock := newSourceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectMembers)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).
			AddRow("user1", "pass1").
			AddRow("user2", "pass2"))
	mock.ExpectQuery(regexp.QuoteMeta(selectMessages)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "body"}).
			AddRow("user1", "Hi!"))
	mock.ExpectCommit()

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, chat.Seed{
		Members:  []chat.Member{{Username: "user1", Password: "pass1"}, {Username: "user2", Password: "pass2"}},
		Messages: []chat.SeedMessage{{Username: "user1", Text: "Hi!"}},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_LoadRollsBackOnError(t *testing.T) {
	src, mock := newSourceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectMembers)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectMessages)).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read messages")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_RunMigrations(t *testing.T) {
	src, _ := newSourceWithMock(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var dir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, d string, opts ...goose.OptionsFunc) error {
		dir = d
		return nil
	}
	require.NoError(t, src.RunMigrations(context.Background()))
	assert.Equal(t, ".", dir)

	gooseUpContext = func(ctx context.Context, db *sql.DB, d string, opts ...goose.OptionsFunc) error {
		return errors.New("migration failed")
	}
	require.Error(t, src.RunMigrations(context.Background()))
}

func TestPostgresSource_Close(t *testing.T) {
	src, mock := newSourceWithMock(t)
	mock.ExpectClose()

	require.NoError(t, src.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
