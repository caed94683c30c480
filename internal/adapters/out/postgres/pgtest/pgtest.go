//go:build integration

// Package pgtest starts a disposable PostgreSQL for integration tests and
// applies the service schema to it.
package pgtest

import (
	"context"
	"testing"
	"time"

	"roadside/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	DB        *gorm.DB
	DSN       string
	container *tcpostgres.PostgresContainer
}

// Start runs a postgres container, migrates it and returns a GORM handle.
func Start(ctx context.Context, t *testing.T) *Database {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.MigrateUp(dsn))

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	return &Database{DB: db, DSN: dsn, container: container}
}

func (d *Database) Terminate(ctx context.Context) error {
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return d.container.Terminate(ctx)
}

// Truncate empties the order tables and the coverage tables.
func (d *Database) Truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, d.DB.Exec("TRUNCATE TABLE extra_costs, orders, contracts, policies CASCADE").Error)
}

// SeedContract inserts a policy and a contract using it and returns the
// contract id.
func (d *Database) SeedContract(t *testing.T, distanceCoverage, amountCoverage, pricePerUnit string) uuid.UUID {
	t.Helper()

	policyID, contractID := uuid.New(), uuid.New()
	require.NoError(t, d.DB.Exec(
		`INSERT INTO policies (id, name, distance_coverage, amount_coverage, price_per_extra_distance_unit)
		 VALUES (?, 'Plan Oro', ?, ?, ?)`,
		policyID, distanceCoverage, amountCoverage, pricePerUnit,
	).Error)
	require.NoError(t, d.DB.Exec(
		`INSERT INTO contracts (id, policy_id, vehicle) VALUES (?, ?, 'AB123CD')`,
		contractID, policyID,
	).Error)

	return contractID
}
