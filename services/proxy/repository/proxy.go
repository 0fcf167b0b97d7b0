package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/proxline/proxline/internal/pkg/models"
)

// ProxyRepo implements proxy.ProxyRepo on PostgreSQL. Proxy rows are
// never deleted; renewal moves the expiry fields in place and the
// expiry sweep flips active off.
type ProxyRepo struct {
	db *sqlx.DB
}

// NewProxyRepo creates a new proxy repository instance
func NewProxyRepo(db *sqlx.DB) *ProxyRepo {
	return &ProxyRepo{db: db}
}

const proxyColumns = `id, user_id, transaction_id, item_id, ip, host, port,
	version, type, country, descr, date_start, date_end, unixtime,
	unixtime_end, days, active, auto_renew, created_at, updated_at`

// CreateProxy inserts one lease row derived from an upstream line item
func (r *ProxyRepo) CreateProxy(ctx context.Context, proxy *models.Proxy) error {
	proxy.ID = uuid.New()
	now := time.Now()
	proxy.CreatedAt = now
	proxy.UpdatedAt = now

	query := `
		INSERT INTO proxies (id, user_id, transaction_id, item_id, ip, host,
			port, version, type, country, descr, date_start, date_end,
			unixtime, unixtime_end, days, active, auto_renew, created_at, updated_at
		) VALUES (:id, :user_id, :transaction_id, :item_id, :ip, :host,
			:port, :version, :type, :country, :descr, :date_start, :date_end,
			:unixtime, :unixtime_end, :days, :active, :auto_renew, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, proxy); err != nil {
		return fmt.Errorf("%w: failed to insert proxy %s: %v", models.ErrPersistenceFailure, proxy.ItemID, err)
	}

	return nil
}

// ListByUser returns all leases owned by a user, newest first
func (r *ProxyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Proxy, error) {
	query := fmt.Sprintf(`SELECT %s FROM proxies WHERE user_id = $1 ORDER BY created_at DESC`, proxyColumns)

	var proxies []models.Proxy
	if err := r.db.SelectContext(ctx, &proxies, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list proxies: %w", err)
	}

	return proxies, nil
}

// GetAutoRenewDue returns active auto-renewing leases expiring at or
// before the deadline
func (r *ProxyRepo) GetAutoRenewDue(ctx context.Context, deadline int64) ([]models.Proxy, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM proxies
		WHERE active = true AND auto_renew = true AND unixtime_end <= $1
		ORDER BY unixtime_end ASC
	`, proxyColumns)

	var proxies []models.Proxy
	if err := r.db.SelectContext(ctx, &proxies, query, deadline); err != nil {
		return nil, fmt.Errorf("failed to select renewal candidates: %w", err)
	}

	return proxies, nil
}

// UpdateExpiry moves a lease's expiry fields in place after a renewal
func (r *ProxyRepo) UpdateExpiry(ctx context.Context, id uuid.UUID, dateEnd time.Time, unixtimeEnd int64) error {
	query := `
		UPDATE proxies
		SET date_end = $1, unixtime_end = $2, updated_at = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, dateEnd, unixtimeEnd, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update proxy expiry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ListActiveExpired returns active leases whose expiry already passed
func (r *ProxyRepo) ListActiveExpired(ctx context.Context, now int64) ([]models.Proxy, error) {
	query := fmt.Sprintf(`SELECT %s FROM proxies WHERE active = true AND unixtime_end < $1`, proxyColumns)

	var proxies []models.Proxy
	if err := r.db.SelectContext(ctx, &proxies, query, now); err != nil {
		return nil, fmt.Errorf("failed to select expired proxies: %w", err)
	}

	return proxies, nil
}

// Deactivate flips active off for the given leases and reports how
// many rows changed
func (r *ProxyRepo) Deactivate(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`UPDATE proxies SET active = false, updated_at = ? WHERE id IN (?)`, time.Now(), ids)
	if err != nil {
		return 0, fmt.Errorf("failed to build deactivate query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate proxies: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deactivated proxies: %w", err)
	}

	return int(n), nil
}
