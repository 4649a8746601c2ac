package identity

import (
	"context"

	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// User is a registered donor. Credential storage and token issuance live in
// a separate auth system; this context only needs the identity and the
// persisted cart.
type User struct {
	shared.BaseEntity
	Name  string
	Email string
	Cart  cart.Cart
}

// Repository provides access to user records
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	SaveCart(ctx context.Context, userID uuid.UUID, c cart.Cart) error
}
