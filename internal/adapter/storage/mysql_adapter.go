package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/storefront/internal/core/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          VARCHAR(36)    NOT NULL PRIMARY KEY,
		request_id  VARCHAR(128)   NOT NULL DEFAULT '',
		total       DECIMAL(12, 2) NOT NULL,
		status      VARCHAR(16)    NOT NULL,
		created_at  DATETIME(6)    NOT NULL,
		updated_at  DATETIME(6)    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		order_id     VARCHAR(36)    NOT NULL,
		line_no      INT            NOT NULL,
		product_name VARCHAR(255)   NOT NULL,
		quantity     INT            NOT NULL,
		price        DECIMAL(12, 2) NOT NULL,
		PRIMARY KEY (order_id, line_no)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		product_name VARCHAR(255) NOT NULL PRIMARY KEY,
		stock        INT          NOT NULL,
		active       BOOLEAN      NOT NULL,
		version      INT          NOT NULL DEFAULT 0,
		updated_at   DATETIME(6)  NOT NULL
	)`,
}

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// Migrate creates the tables the adapter writes to.
func (m *MySQLAdapter) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, request_id, total, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		order.ID, order.RequestID, order.Total, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, line := range order.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, line_no, product_name, quantity, price)
			VALUES (?, ?, ?, ?, ?)`,
			order.ID, i, line.Product, line.Quantity, line.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	// Workers commit concurrently, so an older snapshot must not overwrite a
	// newer one. updated_at is assigned last because MySQL applies the
	// assignments left to right.
	for _, inv := range order.Stock {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO inventory (product_name, stock, active, version, updated_at)
			VALUES (?, ?, ?, 1, ?)
			ON DUPLICATE KEY UPDATE
				stock      = IF(VALUES(updated_at) >= updated_at, VALUES(stock), stock),
				active     = IF(VALUES(updated_at) >= updated_at, VALUES(active), active),
				version    = version + 1,
				updated_at = GREATEST(updated_at, VALUES(updated_at))`,
			inv.ProductName, inv.Quantity, inv.Active, inv.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert inventory: %w", err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetInventory(ctx context.Context, productName string) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := m.db.QueryRowContext(ctx, `
		SELECT product_name, stock, active, version, updated_at
		FROM inventory WHERE product_name = ?`, productName,
	).Scan(&inv.ProductName, &inv.Quantity, &inv.Active, &inv.Version, &inv.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	return &inv, nil
}
