package beneficiary

import (
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Contact holds an orphanage's contact details
type Contact struct {
	Email string
	Phone string
}

// Orphanage represents an institution hosting orphans and running campaigns
type Orphanage struct {
	shared.BaseEntity
	Name     string
	AdminID  uuid.UUID
	Location Location
	Contact  Contact
}

// NewOrphanage creates a new orphanage record
func NewOrphanage(name string, adminID uuid.UUID, location Location, contact Contact) (*Orphanage, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Orphanage name cannot be empty")
	}
	if adminID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADMIN", "Admin ID cannot be empty")
	}

	return &Orphanage{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		AdminID:    adminID,
		Location:   location,
		Contact:    contact,
	}, nil
}
