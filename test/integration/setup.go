package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"digikart/internal/database"
	"digikart/internal/model"
	"digikart/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCatalogue inserts a fixed test catalogue through the repository.
func SeedCatalogue(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	now := time.Now().UTC()
	products := []model.Product{
		{ID: "P001", Name: "Logo Design", Description: "Custom logo design",
			Price: 25.00, Category: model.CategoryDesign, CreatedAt: now},
		{ID: "P002", Name: "Art Drawing", Description: "Photo turned into art",
			Price: 45.00, Category: model.CategoryArt,
			Options: model.Options{"styles": []any{
				map[string]any{"name": "Oil Painting", "price_modifier": float64(0)},
				map[string]any{"name": "Cyberpunk", "price_modifier": float64(0)},
			}},
			CreatedAt: now},
		{ID: "P003", Name: "Video Editing - 1 Minute", Price: 35.00,
			Category: model.CategoryVideo,
			Options:  model.Options{"duration": "1 minute"}, CreatedAt: now},
		{ID: "P004", Name: "Full Photoshop Course", Price: 149.99,
			Category: model.CategoryCourse, CreatedAt: now},
	}

	repo := repository.NewProductRepository(pool, zerolog.Nop())
	if err := repo.InsertProducts(context.Background(), products); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
