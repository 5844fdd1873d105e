package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopdarven/storefront/internal/models"
	"github.com/shopdarven/storefront/internal/utils"
)

// ReceiptRepository keeps the storefront's own record of submitted orders.
// The orders themselves live in the shop API.
type ReceiptRepository struct {
	DB *sql.DB
}

func NewReceiptRepo(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{DB: db}
}

func (r *ReceiptRepository) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO receipts (cart_id, order_id, item_count, subtotal, stitching_cost, delivery_charges, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, receipt.CartID, receipt.OrderID, receipt.ItemCount, receipt.Subtotal, receipt.StitchingCost, receipt.DeliveryCharges, receipt.Total).
		Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	return nil
}

func (r *ReceiptRepository) GetReceiptByOrderID(ctx context.Context, orderID int64) (*models.Receipt, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, cart_id, order_id, item_count, subtotal, stitching_cost, delivery_charges, total, created_at
		FROM receipts
		WHERE order_id = $1
	`

	receipt := &models.Receipt{}

	err := r.DB.QueryRowContext(dbCtx, query, orderID).Scan(&receipt.ID, &receipt.CartID, &receipt.OrderID, &receipt.ItemCount, &receipt.Subtotal, &receipt.StitchingCost, &receipt.DeliveryCharges, &receipt.Total, &receipt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return receipt, nil
}

// ListReceipts returns one page of receipts, newest first, and the total count.
func (r *ReceiptRepository) ListReceipts(ctx context.Context, page, size int) ([]*models.Receipt, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	offset := (page - 1) * size

	var total int

	countQuery := `SELECT COUNT(*) FROM receipts`

	if err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	query := `
		SELECT id, cart_id, order_id, item_count, subtotal, stitching_cost, delivery_charges, total, created_at
		FROM receipts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	receipts := []*models.Receipt{}

	for rows.Next() {
		receipt := &models.Receipt{}

		if err := rows.Scan(&receipt.ID, &receipt.CartID, &receipt.OrderID, &receipt.ItemCount, &receipt.Subtotal, &receipt.StitchingCost, &receipt.DeliveryCharges, &receipt.Total, &receipt.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan receipt: %w", err)
		}

		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, total, nil
}
