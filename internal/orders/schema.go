package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// InitSchema creates the orders table if it does not exist.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGINT PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		street TEXT NULL,
		district TEXT NULL,
		region TEXT NULL
	);
	`

	statements := []string{
		createOrdersQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OrderSeed struct {
	ID       int64  `json:"id"`
	Number   string `json:"order_number"`
	Street   string `json:"street"`
	District string `json:"district"`
	Region   string `json:"region"`
}

// SeedFromJSON upserts the orders listed in a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed orders: parse json: %w", err)
	}

	for i, item := range data {
		if item.ID <= 0 {
			return 0, fmt.Errorf("seed orders: invalid id at index %d: %d", i+1, item.ID)
		}
		if strings.TrimSpace(item.Number) == "" {
			return 0, fmt.Errorf("seed orders: item at index %d: order_number cannot be empty", i+1)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO orders (id, order_number, street, district, region)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET
		order_number = EXCLUDED.order_number,
		street = EXCLUDED.street,
		district = EXCLUDED.district,
		region = EXCLUDED.region;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range data {
		_, err := stmt.ExecContext(ctx,
			item.ID,
			strings.TrimSpace(item.Number),
			nullable(item.Street),
			nullable(item.District),
			nullable(item.Region),
		)
		if err != nil {
			return 0, fmt.Errorf("seed orders: insert order %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return len(data), nil
}

// nullable stores blank text as NULL.
func nullable(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
