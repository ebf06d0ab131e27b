package repository

import (
	"context"

	"soluciones-ferreteras/models"
)

// PriceRepositoryInterface defines the contract for the price store.
// GetAll returns the complete productCode -> tax-inclusive price snapshot;
// writers call it again after every mutation so the latest snapshot always
// replaces the previous one wholesale.
type PriceRepositoryInterface interface {
	EnsureSchema(ctx context.Context) error
	GetAll(ctx context.Context) (map[string]int64, error)
	List(ctx context.Context) ([]models.PriceEntry, error)
	Upsert(ctx context.Context, code string, price int64) error
	Delete(ctx context.Context, code string) error
}
