package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresRepository is the database/sql implementation of Repository.
type PostgresRepository struct{ DB *sql.DB }

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const selectOrder = `
	SELECT
		id,
		order_number,
		street,
		district,
		region
	FROM orders
	`

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	row := r.DB.QueryRowContext(ctx, selectOrder+`WHERE id = $1;`, id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

func (r *PostgresRepository) GetByNumber(ctx context.Context, number string) (*Order, error) {
	row := r.DB.QueryRowContext(ctx, selectOrder+`WHERE order_number = $1;`, number)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("get order %q: %w", number, err)
	}
	return o, nil
}

func scanOrder(row *sql.Row) (*Order, error) {
	var (
		o                        Order
		street, district, region sql.NullString
	)
	err := row.Scan(&o.ID, &o.Number, &street, &district, &region)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}
	o.Street = street.String
	o.District = district.String
	o.Region = region.String
	return &o, nil
}
