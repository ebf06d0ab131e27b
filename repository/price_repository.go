package repository

import (
	"context"
	"fmt"
	"log"

	"soluciones-ferreteras/db"
	"soluciones-ferreteras/models"
)

// PriceRepository handles database operations for the precios table.
// Implements PriceRepositoryInterface
type PriceRepository struct{}

// NewPriceRepository creates a new PriceRepository
func NewPriceRepository() *PriceRepository {
	return &PriceRepository{}
}

// Ensure PriceRepository implements PriceRepositoryInterface
var _ PriceRepositoryInterface = (*PriceRepository)(nil)

// EnsureSchema creates the precios table if it does not exist yet
func (r *PriceRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS precios (
			code       TEXT PRIMARY KEY,
			precio     BIGINT NOT NULL CHECK (precio > 0),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure precios schema: %w", err)
	}
	return nil
}

// GetAll returns the full price snapshot as a code -> price map
func (r *PriceRepository) GetAll(ctx context.Context) (map[string]int64, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT code, precio FROM precios`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]int64)
	for rows.Next() {
		var code string
		var price int64
		if err := rows.Scan(&code, &price); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		prices[code] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read price rows: %w", err)
	}

	log.Printf("💰 PriceRepository: loaded %d prices", len(prices))
	return prices, nil
}

// List returns the full price snapshot sorted by product code
func (r *PriceRepository) List(ctx context.Context) ([]models.PriceEntry, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT code, precio FROM precios ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var entries []models.PriceEntry
	for rows.Next() {
		var entry models.PriceEntry
		if err := rows.Scan(&entry.Code, &entry.Price); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Upsert inserts or replaces the price for a product code
func (r *PriceRepository) Upsert(ctx context.Context, code string, price int64) error {
	query := `
		INSERT INTO precios (code, precio, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (code) DO UPDATE SET precio = EXCLUDED.precio, updated_at = now()
	`
	if _, err := db.DB.ExecContext(ctx, query, code, price); err != nil {
		return fmt.Errorf("failed to upsert price for %s: %w", code, err)
	}

	log.Printf("✅ PriceRepository: set %s = %d", code, price)
	return nil
}

// Delete removes the price for a product code; deleting an absent code is not an error
func (r *PriceRepository) Delete(ctx context.Context, code string) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM precios WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete price for %s: %w", code, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Printf("⚠️  PriceRepository: delete for unknown code %s (no-op)", code)
	} else {
		log.Printf("✅ PriceRepository: deleted price for %s", code)
	}
	return nil
}
