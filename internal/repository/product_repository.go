package repository

import (
	"context"
	"fmt"

	"digikart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetAll retrieves the full catalogue, ordered by name.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price, category, COALESCE(image_url, ''), options, created_at
		FROM products
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT id, name, description, price, category, COALESCE(image_url, ''), options, created_at
		FROM products
		WHERE id = $1
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
			return nil, fmt.Errorf("failed to query product: %w", err)
		}
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, nil
	}

	p, err := scanProduct(rows)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to scan product")
		return nil, err
	}

	return p, nil
}

// ValidateProductsExist checks if all provided product IDs exist in the database.
// Returns error if any product ID does not exist.
func (r *productRepository) ValidateProductsExist(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT COUNT(DISTINCT id)
		FROM products
		WHERE id = ANY($1)
	`

	var count int
	err := r.pool.QueryRow(ctx, query, ids).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to validate products exist")
		return fmt.Errorf("failed to validate products exist: %w", err)
	}

	// Distinct on the input too: duplicate cart references to one product are fine.
	distinct := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	if count != len(distinct) {
		r.logger.Warn().
			Int("expected", len(distinct)).
			Int("found", count).
			Msg("not all product IDs exist")
		return model.ErrProductNotFound
	}

	return nil
}

// Count returns the number of products in the catalogue.
func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// InsertProducts inserts catalogue entries in a single batch.
func (r *productRepository) InsertProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO products (id, name, description, price, category, image_url, options, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
	`

	batch := &pgx.Batch{}
	for _, p := range products {
		optionsJSON, err := marshalOptions(p.Options)
		if err != nil {
			return err
		}
		batch.Queue(query, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, optionsJSON, p.CreatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(products); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("product_id", products[i].ID).
				Msg("failed to insert product")
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	r.logger.Info().Int("count", len(products)).Msg("catalogue products inserted")

	return nil
}

// scanProduct reads one product row including its JSONB options column.
func scanProduct(rows pgx.Rows) (*model.Product, error) {
	var (
		p           model.Product
		optionsJSON []byte
	)

	err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &optionsJSON, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	opts, err := unmarshalOptions(optionsJSON)
	if err != nil {
		return nil, err
	}
	p.Options = opts

	return &p, nil
}
