package repository

import (
	"context"
	"fmt"

	"inventory-api/internal/models"

	"github.com/jackc/pgx/v5"
)

// ListSodas returns every soda ordered by id.
func (r *Repository) ListSodas(ctx context.Context) ([]models.Soda, error) {
	sql := `
		SELECT id, name, abbreviation, low_calorie
		FROM sodas
		ORDER BY id
	`
	return r.querySodas(ctx, sql)
}

// ListSodasByRetailer returns the sodas a retailer carries.
func (r *Repository) ListSodasByRetailer(ctx context.Context, retailerID int64) ([]models.Soda, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM retailers WHERE id = $1)`, retailerID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("repository: failed to check retailer: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("repository: retailer %d: %w", retailerID, models.ErrNotFound)
	}

	sql := `
		SELECT s.id, s.name, s.abbreviation, s.low_calorie
		FROM sodas s
		JOIN retailer_sodas rs ON rs.soda_id = s.id
		WHERE rs.retailer_id = $1
		ORDER BY s.id
	`
	return r.querySodas(ctx, sql, retailerID)
}

// GetSoda returns a single soda.
func (r *Repository) GetSoda(ctx context.Context, id int64) (*models.Soda, error) {
	sql := `
		SELECT id, name, abbreviation, low_calorie
		FROM sodas
		WHERE id = $1
	`
	var soda models.Soda
	if err := r.db.QueryRow(ctx, sql, id).Scan(&soda.ID, &soda.Name, &soda.Abbreviation, &soda.LowCalorie); err != nil {
		return nil, fmt.Errorf("repository: failed to get soda: %w", translate(err))
	}
	return &soda, nil
}

// CreateSoda inserts a soda.
func (r *Repository) CreateSoda(ctx context.Context, in models.SodaInput) (*models.Soda, error) {
	sql := `
		INSERT INTO sodas (name, abbreviation, low_calorie)
		VALUES ($1, $2, $3)
		RETURNING id, name, abbreviation, low_calorie
	`
	var soda models.Soda
	err := r.db.QueryRow(ctx, sql, in.Name, in.Abbreviation, in.LowCalorie).
		Scan(&soda.ID, &soda.Name, &soda.Abbreviation, &soda.LowCalorie)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert soda: %w", translate(err))
	}
	return &soda, nil
}

// UpdateSoda replaces the fields of a soda.
func (r *Repository) UpdateSoda(ctx context.Context, id int64, in models.SodaInput) (*models.Soda, error) {
	sql := `
		UPDATE sodas
		SET name = $2, abbreviation = $3, low_calorie = $4
		WHERE id = $1
		RETURNING id, name, abbreviation, low_calorie
	`
	var soda models.Soda
	err := r.db.QueryRow(ctx, sql, id, in.Name, in.Abbreviation, in.LowCalorie).
		Scan(&soda.ID, &soda.Name, &soda.Abbreviation, &soda.LowCalorie)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update soda: %w", translate(err))
	}
	return &soda, nil
}

// DeleteSoda removes a soda; retailers simply stop carrying it.
func (r *Repository) DeleteSoda(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sodas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete soda: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to delete soda: %w", models.ErrNotFound)
	}
	return nil
}

// ImportSodas bulk loads sodas with COPY. The whole batch fails on the first conflict.
func (r *Repository) ImportSodas(ctx context.Context, sodas []models.SodaInput) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"sodas"},
		[]string{"name", "abbreviation", "low_calorie"},
		pgx.CopyFromSlice(len(sodas), func(i int) ([]any, error) {
			s := sodas[i]
			return []any{s.Name, s.Abbreviation, s.LowCalorie}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to import sodas: %w", translate(err))
	}
	return n, nil
}

func (r *Repository) querySodas(ctx context.Context, sql string, args ...any) ([]models.Soda, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute soda query: %w", err)
	}
	defer rows.Close()

	sodas := []models.Soda{}
	for rows.Next() {
		var soda models.Soda
		if err := rows.Scan(&soda.ID, &soda.Name, &soda.Abbreviation, &soda.LowCalorie); err != nil {
			return nil, fmt.Errorf("repository: failed to scan soda: %w", err)
		}
		sodas = append(sodas, soda)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return sodas, nil
}
