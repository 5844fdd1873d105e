package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/shopdarven/storefront/internal/config"

	_ "github.com/lib/pq"
)

type Repository struct {
	DB      *sql.DB
	Receipt *ReceiptRepository
}

const receiptsSchema = `
	CREATE TABLE IF NOT EXISTS receipts (
		id BIGSERIAL PRIMARY KEY,
		cart_id VARCHAR(64) NOT NULL,
		order_id BIGINT NOT NULL,
		item_count INTEGER NOT NULL,
		subtotal BIGINT NOT NULL,
		stitching_cost BIGINT NOT NULL,
		delivery_charges BIGINT NOT NULL,
		total BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

func New(ctx context.Context, cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(), otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{DB: db, Receipt: NewReceiptRepo(db)}, nil
}

// EnsureSchema creates the receipts table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, receiptsSchema); err != nil {
		return fmt.Errorf("failed to create receipts table: %w", err)
	}

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}
