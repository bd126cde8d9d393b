package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/models"
	"github.com/PriceTrackr/price_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

// SaveReceipt inserts a receipt header and its items within a DB transaction.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelReceipt := mapping.ToModelReceipt(receipt)
	headerQuery := `
		INSERT INTO receipts (receipt_id, user_id, purchase_date, subtotal, tax, total, raw_text, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelReceipt.ReceiptID,
		modelReceipt.UserID,
		modelReceipt.PurchaseDate,
		modelReceipt.Subtotal,
		modelReceipt.Tax,
		modelReceipt.Total,
		modelReceipt.RawText,
		modelReceipt.CreatedAt,
		modelReceipt.CreatedBy,
		modelReceipt.LastUpdatedAt,
		modelReceipt.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt %s: %w", modelReceipt.ReceiptID, err)
	}

	itemQuery := `
		INSERT INTO receipt_items (receipt_id, item_code, description, final_price, discount, line_number)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range mapping.ToModelReceiptItems(receipt) {
		batch.Queue(itemQuery, item.ReceiptID, item.ItemCode, item.Description, item.FinalPrice, item.Discount, item.LineNumber)
	}
	br := tx.SendBatch(ctx, batch)
	for range receipt.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert receipt items for %s: %w", modelReceipt.ReceiptID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close receipt item batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindReceiptByID retrieves a receipt with its items.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	headerQuery := `
		SELECT receipt_id, user_id, purchase_date, subtotal, tax, total, raw_text, created_at, created_by, last_updated_at, last_updated_by
		FROM receipts
		WHERE receipt_id = $1;
	`
	var modelReceipt models.Receipt
	err := r.Pool.QueryRow(ctx, headerQuery, receiptID).Scan(
		&modelReceipt.ReceiptID,
		&modelReceipt.UserID,
		&modelReceipt.PurchaseDate,
		&modelReceipt.Subtotal,
		&modelReceipt.Tax,
		&modelReceipt.Total,
		&modelReceipt.RawText,
		&modelReceipt.CreatedAt,
		&modelReceipt.CreatedBy,
		&modelReceipt.LastUpdatedAt,
		&modelReceipt.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by id %s: %w", receiptID, err)
	}

	items, err := r.itemsForReceipts(ctx, []string{receiptID})
	if err != nil {
		return nil, err
	}

	domainReceipt := mapping.ToDomainReceipt(modelReceipt, items[receiptID])
	return &domainReceipt, nil
}

// ListReceiptsByUser retrieves all receipts owned by a user, items included.
func (r *PgxReceiptRepository) ListReceiptsByUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	headerQuery := `
		SELECT receipt_id, user_id, purchase_date, subtotal, tax, total, raw_text, created_at, created_by, last_updated_at, last_updated_by
		FROM receipts
		WHERE user_id = $1
		ORDER BY purchase_date, receipt_id;
	`
	rows, err := r.Pool.Query(ctx, headerQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Receipt, error) {
		var receipt models.Receipt
		err := row.Scan(
			&receipt.ReceiptID,
			&receipt.UserID,
			&receipt.PurchaseDate,
			&receipt.Subtotal,
			&receipt.Tax,
			&receipt.Total,
			&receipt.RawText,
			&receipt.CreatedAt,
			&receipt.CreatedBy,
			&receipt.LastUpdatedAt,
			&receipt.LastUpdatedBy,
		)
		return receipt, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}
	if len(modelReceipts) == 0 {
		return []domain.Receipt{}, nil
	}

	receiptIDs := make([]string, len(modelReceipts))
	for i, receipt := range modelReceipts {
		receiptIDs[i] = receipt.ReceiptID
	}
	itemsByReceipt, err := r.itemsForReceipts(ctx, receiptIDs)
	if err != nil {
		return nil, err
	}

	domainReceipts := make([]domain.Receipt, len(modelReceipts))
	for i, receipt := range modelReceipts {
		domainReceipts[i] = mapping.ToDomainReceipt(receipt, itemsByReceipt[receipt.ReceiptID])
	}
	return domainReceipts, nil
}

// DeleteReceipt removes a receipt; items go with it via ON DELETE CASCADE.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1;`, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// itemsForReceipts loads item rows for a set of receipts, grouped by receipt id.
func (r *PgxReceiptRepository) itemsForReceipts(ctx context.Context, receiptIDs []string) (map[string][]models.ReceiptItem, error) {
	itemQuery := `
		SELECT receipt_id, item_code, description, final_price, discount, line_number
		FROM receipt_items
		WHERE receipt_id = ANY($1)
		ORDER BY receipt_id, line_number;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, receiptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipt items: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.ReceiptItem, len(receiptIDs))
	for rows.Next() {
		var item models.ReceiptItem
		if err := rows.Scan(&item.ReceiptID, &item.ItemCode, &item.Description, &item.FinalPrice, &item.Discount, &item.LineNumber); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		grouped[item.ReceiptID] = append(grouped[item.ReceiptID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read receipt items: %w", err)
	}
	return grouped, nil
}
