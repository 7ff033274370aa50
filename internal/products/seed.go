package products

import (
	"context"
	"fmt"
	"log/slog"
)

// SeedStore is the part of Repository the Seeder needs.
type SeedStore interface {
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, products []Product) error
}

// Seeder populates an empty products table with a fixed catalog.
type Seeder struct {
	store   SeedStore
	logger  *slog.Logger
	catalog []Product
}

// NewSeeder constructs a Seeder. A nil catalog selects SampleCatalog.
func NewSeeder(store SeedStore, logger *slog.Logger, catalog []Product) *Seeder {
	if catalog == nil {
		catalog = SampleCatalog()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{store: store, logger: logger, catalog: catalog}
}

// Run inserts the catalog when, and only when, the table holds no rows. It
// returns the number of rows inserted, which is zero on every run after the first.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("products: seed count: %w", err)
	}
	if count != 0 {
		s.logger.Debug("seed skipped", slog.Int64("existing_rows", count))
		return 0, nil
	}
	if err := s.store.InsertBatch(ctx, s.catalog); err != nil {
		return 0, fmt.Errorf("products: seed insert: %w", err)
	}
	s.logger.Info("database populated with sample products", slog.Int("rows", len(s.catalog)))
	return len(s.catalog), nil
}
