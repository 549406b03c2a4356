package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/catalog-aggregator/internal/provider"
)

// PostgresProviderRepository reads enabled providers from the catalog_providers table.
//
//	CREATE TABLE catalog_providers (
//	    name       TEXT PRIMARY KEY,
//	    base_url   TEXT NOT NULL,
//	    timeout_ms INTEGER NOT NULL DEFAULT 0,
//	    priority   INTEGER NOT NULL DEFAULT 0,
//	    enabled    BOOLEAN NOT NULL DEFAULT TRUE
//	);
type PostgresProviderRepository struct {
	db *sql.DB
}

func NewPostgresProviderRepository(db *sql.DB) *PostgresProviderRepository {
	return &PostgresProviderRepository{db: db}
}

// GetAll implements ProviderRepository. Lower priority values are consulted first.
func (r *PostgresProviderRepository) GetAll(ctx context.Context) ([]provider.Provider, error) {
	query := `SELECT name, base_url, timeout_ms FROM catalog_providers WHERE enabled = TRUE ORDER BY priority, name`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	var providers []provider.Provider
	for rows.Next() {
		var (
			p         provider.Provider
			timeoutMs int64
		)
		if err := rows.Scan(&p.Name, &p.BaseURL, &timeoutMs); err != nil {
			return nil, fmt.Errorf("failed to scan provider: %w", err)
		}
		p.Timeout = time.Duration(timeoutMs) * time.Millisecond
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read providers: %w", err)
	}

	return normalizeAll(providers)
}
