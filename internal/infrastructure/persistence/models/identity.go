package models

import (
	"encoding/json"

	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
// The persisted cart is a JSON document; it is revalidated against live
// recipient state on every read, so staleness here is expected and safe.
type UserModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cart  string `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() (*identity.User, error) {
	var c cart.Cart
	if m.Cart != "" {
		if err := json.Unmarshal([]byte(m.Cart), &c); err != nil {
			return nil, err
		}
	}
	return &identity.User{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Cart:       c,
	}, nil
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) error {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	data, err := json.Marshal(u.Cart)
	if err != nil {
		return err
	}
	m.Cart = string(data)
	return nil
}
