package sqlrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dropDatabas3/gesclient/internal/domain/repository"
)

func newMockConn(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	})
	require.NoError(t, err)

	return New("postgres", db, Options{}), mock
}

var clientColumns = []string{"id", "numero", "statut", "nom", "email", "created_at", "updated_at"}

func TestPostgresListFiltersByStatut(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	email := "jean.dupont@email.com"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clients" WHERE statut = $1 ORDER BY created_at ASC`)).
		WithArgs("actif").
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow("id-1", "CLI001", "actif", "Jean Dupont", email, now, now).
			AddRow("id-2", "CLI002", "actif", "Marie Curie", nil, now, now))

	clients, err := conn.Clients().List(context.Background(), repository.ClientFilter{Statut: "actif"})
	require.NoError(t, err)
	require.Len(t, clients, 2)
	require.Equal(t, "CLI001", clients[0].Numero)
	require.Equal(t, email, clients[0].Email)
	require.Empty(t, clients[1].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByNumeroNotFound(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE numero = \$1`).
		WillReturnRows(sqlmock.NewRows(clientColumns))

	_, err := conn.Clients().GetByNumero(context.Background(), "NOPE")
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateConflictRollsBack(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "clients" WHERE numero = $1`)).
		WithArgs("CLI001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := conn.Clients().Create(context.Background(), repository.Client{Numero: "CLI001", Statut: "actif", Nom: "Jean"})
	require.ErrorIs(t, err, repository.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCountWrapsStoreErrors(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "clients"`)).
		WillReturnError(errors.New("connection reset"))

	_, err := conn.Clients().Count(context.Background())
	require.Error(t, err)
	require.False(t, repository.IsNotFound(err))
	require.Contains(t, err.Error(), "connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLogsNewestFirst(t *testing.T) {
	conn, mock := newMockConn(t)
	newer := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "logs" ORDER BY date DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero", "statut", "message", "date"}).
			AddRow("l2", "ALL", "succès", "3 clients récupérés", newer).
			AddRow("l1", "CLI001", "erreur", "Client inactif", older))

	logs, err := conn.Logs().List(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.True(t, logs[0].Date.After(logs[1].Date))
	require.Equal(t, "succès", logs[0].Statut)
	require.NoError(t, mock.ExpectationsWereMet())
}
