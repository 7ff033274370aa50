package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Service implements the product CRUD operations on top of a Repository.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
}

// NewService constructs a Service. cache may be nil.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// List returns every product, newest id first.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	if s.cache == nil {
		return s.list(ctx)
	}
	key, err := s.cache.BuildKey(ctx, "products", "list")
	if err != nil {
		s.logger.Warn("product cache key", slog.Any("error", err))
		return s.list(ctx)
	}
	var storeErr error
	var out []Product
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		rows, err := s.list(ctx)
		storeErr = err
		return rows, err
	})
	if storeErr != nil {
		return nil, storeErr
	}
	if err != nil {
		s.logger.Warn("product cache fetch", slog.String("key", key), slog.Any("error", err))
		return s.list(ctx)
	}
	if out == nil {
		out = []Product{}
	}
	return out, nil
}

func (s *Service) list(ctx context.Context) ([]Product, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	if rows == nil {
		rows = []Product{}
	}
	return rows, nil
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, wrap("get", err)
	}
	return p, nil
}

// Create validates and persists a new product and returns the stored row.
func (s *Service) Create(ctx context.Context, in ProductInput) (Product, error) {
	p, err := in.product()
	if err != nil {
		return Product{}, err
	}
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return Product{}, wrap("create", err)
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Update replaces every field of an existing product.
func (s *Service) Update(ctx context.Context, id int64, in ProductInput) (Product, error) {
	p, err := in.product()
	if err != nil {
		return Product{}, err
	}
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	changed, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return Product{}, wrap("update", err)
	}
	if changed == 0 {
		return Product{}, ErrNotFound
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// UpdateQuantity sets only the quantity of an existing product.
func (s *Service) UpdateQuantity(ctx context.Context, id int64, in QuantityInput) (Product, error) {
	qty, err := in.quantity()
	if err != nil {
		return Product{}, err
	}
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	changed, err := s.repo.UpdateQuantity(ctx, id, qty)
	if err != nil {
		return Product{}, wrap("update quantity", err)
	}
	if changed == 0 {
		return Product{}, ErrNotFound
	}
	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Delete removes a product permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return wrap("delete", err)
	}
	if changed == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("product cache bump", slog.Any("error", err))
	}
}

func wrap(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("products: %s: %w", op, err)
}
