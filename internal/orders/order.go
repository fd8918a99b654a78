package orders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Order is a delivery order as stored. Address fields are empty when the
// order has no value for them.
type Order struct {
	ID       int64
	Number   string
	Street   string
	District string
	Region   string
}

// Repository reads orders from the order store.
type Repository interface {
	// GetByID returns ErrNotFound when no order has the given id.
	GetByID(ctx context.Context, id int64) (*Order, error)
	// GetByNumber returns ErrNotFound when no order has the given number.
	GetByNumber(ctx context.Context, number string) (*Order, error)
}
