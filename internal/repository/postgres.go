package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const schema = `
	CREATE TABLE IF NOT EXISTS sodas (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		abbreviation VARCHAR(2) NOT NULL,
		low_calorie BOOLEAN NOT NULL DEFAULT FALSE,
		CONSTRAINT sodas_name_key UNIQUE (name),
		CONSTRAINT sodas_abbreviation_key UNIQUE (abbreviation)
	);

	CREATE TABLE IF NOT EXISTS retailers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		street_address VARCHAR(200) NOT NULL,
		city VARCHAR(100) NOT NULL,
		postcode INTEGER,
		country VARCHAR(100) NOT NULL DEFAULT '',
		latitude NUMERIC(10, 7),
		longitude NUMERIC(10, 7),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT retailers_name_key UNIQUE (name),
		CONSTRAINT retailers_street_address_key UNIQUE (street_address)
	);

	CREATE TABLE IF NOT EXISTS retailer_sodas (
		retailer_id BIGINT NOT NULL REFERENCES retailers (id) ON DELETE CASCADE,
		soda_id BIGINT NOT NULL REFERENCES sodas (id) ON DELETE CASCADE,
		PRIMARY KEY (retailer_id, soda_id)
	);

	CREATE INDEX IF NOT EXISTS retailers_postcode_idx ON retailers (postcode);
	CREATE INDEX IF NOT EXISTS retailer_sodas_soda_id_idx ON retailer_sodas (soda_id);
`

// conflictFields maps unique constraints to the record and field they protect.
var conflictFields = map[string]models.ConflictError{
	"sodas_name_key":               {Entity: "soda", Field: "name"},
	"sodas_abbreviation_key":       {Entity: "soda", Field: "abbreviation"},
	"retailers_name_key":           {Entity: "retailer", Field: "name"},
	"retailers_street_address_key": {Entity: "retailer", Field: "street_address"},
}

// Repository implements the retailer and soda repositories for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the tables if they do not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// translate maps driver errors onto the model errors the upper layers understand.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if conflict, ok := conflictFields[pgErr.ConstraintName]; ok {
				return &conflict
			}
			return models.ErrDuplicate
		case "23503": // foreign_key_violation
			return models.ErrInvalidReference
		}
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

// Coordinates travel as text so their digits survive unchanged in both directions.
func parseCoordinate(text *string) (decimal.NullDecimal, error) {
	if text == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*text)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid coordinate %q: %w", *text, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func coordinateArg(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}
