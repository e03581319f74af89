package repository

import (
	"context"
	"fmt"

	"inventory-api/internal/models"

	"github.com/jackc/pgx/v5"
)

const retailerColumns = `
	r.id,
	r.name,
	r.street_address,
	r.city,
	r.postcode,
	r.country,
	r.latitude::text,
	r.longitude::text,
	r.created_at,
	r.updated_at`

// ListRetailers returns every retailer with its sodas, ordered by id.
func (r *Repository) ListRetailers(ctx context.Context) ([]models.Retailer, error) {
	sql := `SELECT` + retailerColumns + `
		FROM retailers r
		ORDER BY r.id`

	return r.queryRetailers(ctx, sql)
}

// ListRetailersBySoda returns the retailers carrying the given soda, ordered by id.
func (r *Repository) ListRetailersBySoda(ctx context.Context, sodaID int64) ([]models.Retailer, error) {
	if _, err := r.GetSoda(ctx, sodaID); err != nil {
		return nil, err
	}

	sql := `SELECT` + retailerColumns + `
		FROM retailers r
		JOIN retailer_sodas rs ON rs.retailer_id = r.id
		WHERE rs.soda_id = $1
		ORDER BY r.id`

	return r.queryRetailers(ctx, sql, sodaID)
}

// GetRetailer returns a single retailer with its sodas.
func (r *Repository) GetRetailer(ctx context.Context, id int64) (*models.Retailer, error) {
	sql := `SELECT` + retailerColumns + `
		FROM retailers r
		WHERE r.id = $1`

	retailer, err := scanRetailer(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get retailer: %w", translate(err))
	}

	sodas, err := r.ListSodasByRetailer(ctx, id)
	if err != nil {
		return nil, err
	}
	retailer.Sodas = sodas
	return &retailer, nil
}

// CreateRetailer inserts a retailer and its soda associations in one transaction.
func (r *Repository) CreateRetailer(ctx context.Context, in models.RetailerInput) (*models.Retailer, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql := `
			INSERT INTO retailers (name, street_address, city, postcode, country)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, sql, in.Name, in.StreetAddress, in.City, in.Postcode, in.Country).Scan(&id); err != nil {
			return err
		}
		return linkSodas(ctx, tx, id, in.SodaIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert retailer: %w", translate(err))
	}

	return r.GetRetailer(ctx, id)
}

// UpdateRetailer replaces the editable fields and the soda set of a retailer.
// Coordinates are left untouched.
func (r *Repository) UpdateRetailer(ctx context.Context, id int64, in models.RetailerInput) (*models.Retailer, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		sql := `
			UPDATE retailers
			SET name = $2, street_address = $3, city = $4, postcode = $5, country = $6, updated_at = now()
			WHERE id = $1
		`
		tag, err := tx.Exec(ctx, sql, id, in.Name, in.StreetAddress, in.City, in.Postcode, in.Country)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		if _, err := tx.Exec(ctx, `DELETE FROM retailer_sodas WHERE retailer_id = $1`, id); err != nil {
			return err
		}
		return linkSodas(ctx, tx, id, in.SodaIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update retailer: %w", translate(err))
	}

	return r.GetRetailer(ctx, id)
}

// UpdateRetailerLocation writes the geocoded coordinates and postcode of a retailer.
func (r *Repository) UpdateRetailerLocation(ctx context.Context, id int64, loc models.Location) error {
	sql := `
		UPDATE retailers
		SET latitude = $2::text::numeric, longitude = $3::text::numeric, postcode = $4, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, sql, id, coordinateArg(loc.Latitude), coordinateArg(loc.Longitude), loc.Postcode)
	if err != nil {
		return fmt.Errorf("repository: failed to update retailer location: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to update retailer location: %w", models.ErrNotFound)
	}
	return nil
}

// DeleteRetailer removes a retailer; its soda associations go with it.
func (r *Repository) DeleteRetailer(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM retailers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete retailer: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: failed to delete retailer: %w", models.ErrNotFound)
	}
	return nil
}

func (r *Repository) queryRetailers(ctx context.Context, sql string, args ...any) ([]models.Retailer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute retailer query: %w", err)
	}
	defer rows.Close()

	retailers := []models.Retailer{}
	for rows.Next() {
		retailer, err := scanRetailer(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan retailer: %w", err)
		}
		retailers = append(retailers, retailer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	if err := r.attachSodas(ctx, retailers); err != nil {
		return nil, err
	}
	return retailers, nil
}

// attachSodas loads the soda sets of all retailers with a single query.
func (r *Repository) attachSodas(ctx context.Context, retailers []models.Retailer) error {
	if len(retailers) == 0 {
		return nil
	}

	ids := make([]int64, len(retailers))
	index := make(map[int64]int, len(retailers))
	for i, retailer := range retailers {
		ids[i] = retailer.ID
		index[retailer.ID] = i
		retailers[i].Sodas = []models.Soda{}
	}

	sql := `
		SELECT rs.retailer_id, s.id, s.name, s.abbreviation, s.low_calorie
		FROM retailer_sodas rs
		JOIN sodas s ON s.id = rs.soda_id
		WHERE rs.retailer_id = ANY($1)
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, sql, ids)
	if err != nil {
		return fmt.Errorf("repository: failed to load retailer sodas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var retailerID int64
		var soda models.Soda
		if err := rows.Scan(&retailerID, &soda.ID, &soda.Name, &soda.Abbreviation, &soda.LowCalorie); err != nil {
			return fmt.Errorf("repository: failed to scan retailer soda: %w", err)
		}
		i := index[retailerID]
		retailers[i].Sodas = append(retailers[i].Sodas, soda)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return nil
}

func linkSodas(ctx context.Context, tx pgx.Tx, retailerID int64, sodaIDs []int64) error {
	if len(sodaIDs) == 0 {
		return nil
	}
	sql := `
		INSERT INTO retailer_sodas (retailer_id, soda_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`
	_, err := tx.Exec(ctx, sql, retailerID, sodaIDs)
	return err
}

func scanRetailer(row scanner) (models.Retailer, error) {
	var (
		retailer models.Retailer
		lat, lng *string
	)
	err := row.Scan(
		&retailer.ID,
		&retailer.Name,
		&retailer.StreetAddress,
		&retailer.City,
		&retailer.Postcode,
		&retailer.Country,
		&lat,
		&lng,
		&retailer.CreatedAt,
		&retailer.UpdatedAt,
	)
	if err != nil {
		return models.Retailer{}, err
	}

	if retailer.Latitude, err = parseCoordinate(lat); err != nil {
		return models.Retailer{}, err
	}
	if retailer.Longitude, err = parseCoordinate(lng); err != nil {
		return models.Retailer{}, err
	}
	retailer.Sodas = []models.Soda{}
	return retailer, nil
}
