package beneficiary

import (
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Gender of an orphan
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender value is valid
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Location is a city/country pair
type Location struct {
	City    string
	Country string
}

// Need is one category of support an orphan requires
type Need struct {
	Category       string
	AmountNeeded   float64
	AmountReceived float64
}

// Orphan represents an individual beneficiary.
// A sponsored orphan no longer accepts donations; donation amounts for
// unsponsored orphans are not capped.
type Orphan struct {
	shared.BaseEntity
	Name         string
	Age          int
	Gender       Gender
	HealthStatus string
	OrphanageID  uuid.UUID
	Location     Location
	Needs        []Need
	IsSponsored  bool
	Bio          string
	Photos       []string
}

// NewOrphan creates a new unsponsored orphan record
func NewOrphan(name string, age int, gender Gender, orphanageID uuid.UUID) (*Orphan, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Orphan name cannot be empty")
	}
	if age < 0 {
		return nil, shared.NewDomainError("INVALID_AGE", "Age cannot be negative")
	}
	if !gender.IsValid() {
		return nil, shared.NewDomainError("INVALID_GENDER", "Gender must be 'male' or 'female'")
	}
	if orphanageID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORPHANAGE", "Orphanage ID cannot be empty")
	}

	return &Orphan{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Age:         age,
		Gender:      gender,
		OrphanageID: orphanageID,
	}, nil
}

// MarkSponsored flags the orphan as sponsored, removing them from the
// donation pool
func (o *Orphan) MarkSponsored() error {
	if o.IsSponsored {
		return shared.ErrInvalidState
	}
	o.IsSponsored = true
	o.Touch()
	return nil
}

// Snapshot returns a read-only projection of the orphan's current state
func (o *Orphan) Snapshot() RecipientSnapshot {
	return RecipientSnapshot{
		ID:          o.ID,
		Kind:        RecipientKindOrphan,
		Name:        o.Name,
		Images:      o.Photos,
		IsSponsored: o.IsSponsored,
	}
}
