package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxline/proxline/internal/pkg/models"
)

func setupDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock, func() { sqlxDB.Close() }
}

func proxyRows(proxies ...models.Proxy) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "transaction_id", "item_id", "ip", "host", "port",
		"version", "type", "country", "descr", "date_start", "date_end",
		"unixtime", "unixtime_end", "days", "active", "auto_renew",
		"created_at", "updated_at",
	})
	for _, p := range proxies {
		rows.AddRow(p.ID, p.UserID, p.TransactionID, p.ItemID, p.IP, p.Host,
			p.Port, p.Version, p.Type, p.Country, p.Descr, p.DateStart,
			p.DateEnd, p.Unixtime, p.UnixtimeEnd, p.Days, p.Active,
			p.AutoRenew, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func TestProxyRepo_CreateProxy(t *testing.T) {
	db, mock, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)

	mock.ExpectExec("INSERT INTO proxies").
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Proxy{
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
		ItemID:        "9001",
		Host:          "203.0.113.10",
		Port:          8080,
		Version:       "ipv4",
		Active:        true,
	}
	err := repo.CreateProxy(context.Background(), p)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProxyRepo_CreateProxy_InsertFailure(t *testing.T) {
	db, mock, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)

	mock.ExpectExec("INSERT INTO proxies").
		WillReturnError(errors.New("disk full"))

	err := repo.CreateProxy(context.Background(), &models.Proxy{ItemID: "9001"})

	assert.ErrorIs(t, err, models.ErrPersistenceFailure)
}

func TestProxyRepo_GetAutoRenewDue(t *testing.T) {
	db, mock, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)
	deadline := time.Now().Add(75 * time.Minute).Unix()

	due := models.Proxy{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ItemID:      "9001",
		Version:     "ipv4",
		Days:        30,
		Active:      true,
		AutoRenew:   true,
		UnixtimeEnd: deadline - 600,
	}

	mock.ExpectQuery("SELECT (.+) FROM proxies").
		WithArgs(deadline).
		WillReturnRows(proxyRows(due))

	candidates, err := repo.GetAutoRenewDue(context.Background(), deadline)

	assert.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, "9001", candidates[0].ItemID)
}

func TestProxyRepo_UpdateExpiry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, cleanup := setupDB(t)
		defer cleanup()

		repo := NewProxyRepo(db)
		id := uuid.New()
		end := time.Now().Add(30 * 24 * time.Hour)

		mock.ExpectExec("UPDATE proxies").
			WithArgs(end, end.Unix(), sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateExpiry(context.Background(), id, end, end.Unix())

		assert.NoError(t, err)
	})

	t.Run("unknown lease", func(t *testing.T) {
		db, mock, cleanup := setupDB(t)
		defer cleanup()

		repo := NewProxyRepo(db)

		mock.ExpectExec("UPDATE proxies").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateExpiry(context.Background(), uuid.New(), time.Now(), 0)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestProxyRepo_Deactivate(t *testing.T) {
	db, mock, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec("UPDATE proxies SET active = false").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.Deactivate(context.Background(), ids)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestProxyRepo_Deactivate_EmptyInput(t *testing.T) {
	db, _, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)

	// No query is issued for an empty id list.
	n, err := repo.Deactivate(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestProxyRepo_ListByUser(t *testing.T) {
	db, mock, cleanup := setupDB(t)
	defer cleanup()

	repo := NewProxyRepo(db)
	userID := uuid.New()

	first := models.Proxy{ID: uuid.New(), UserID: userID, ItemID: "9002", Active: true}
	second := models.Proxy{ID: uuid.New(), UserID: userID, ItemID: "9001", Active: false}

	mock.ExpectQuery("SELECT (.+) FROM proxies").
		WithArgs(userID).
		WillReturnRows(proxyRows(first, second))

	proxies, err := repo.ListByUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, proxies, 2)
	assert.Equal(t, "9002", proxies[0].ItemID)
}
