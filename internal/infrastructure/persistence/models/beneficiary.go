package models

import (
	"encoding/json"
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrphanageModel is the persistence model for the Orphanage domain entity.
type OrphanageModel struct {
	BaseModel
	Name    string    `gorm:"type:varchar(200);not null"`
	AdminID uuid.UUID `gorm:"type:uuid;not null;index"`
	City    string    `gorm:"type:varchar(100)"`
	Country string    `gorm:"type:varchar(100)"`
	Email   string    `gorm:"type:varchar(255)"`
	Phone   string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (OrphanageModel) TableName() string {
	return "orphanages"
}

// ToDomain converts the persistence model to a domain Orphanage entity.
func (m *OrphanageModel) ToDomain() *beneficiary.Orphanage {
	return &beneficiary.Orphanage{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		AdminID:    m.AdminID,
		Location:   beneficiary.Location{City: m.City, Country: m.Country},
		Contact:    beneficiary.Contact{Email: m.Email, Phone: m.Phone},
	}
}

// FromDomain populates the persistence model from a domain Orphanage entity.
func (m *OrphanageModel) FromDomain(o *beneficiary.Orphanage) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
	m.AdminID = o.AdminID
	m.City = o.Location.City
	m.Country = o.Location.Country
	m.Email = o.Contact.Email
	m.Phone = o.Contact.Phone
}

// OrphanModel is the persistence model for the Orphan domain entity.
// Needs and Photos are stored as JSON documents.
type OrphanModel struct {
	BaseModel
	Name         string    `gorm:"type:varchar(200);not null"`
	Age          int       `gorm:"not null"`
	Gender       string    `gorm:"type:varchar(10);not null"`
	HealthStatus string    `gorm:"type:varchar(200)"`
	OrphanageID  uuid.UUID `gorm:"type:uuid;not null;index"`
	City         string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100)"`
	Needs        string    `gorm:"type:jsonb"`
	IsSponsored  bool      `gorm:"not null;default:false;index"`
	Bio          string    `gorm:"type:text"`
	Photos       string    `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (OrphanModel) TableName() string {
	return "orphans"
}

// ToDomain converts the persistence model to a domain Orphan entity.
func (m *OrphanModel) ToDomain() *beneficiary.Orphan {
	var needs []beneficiary.Need
	if m.Needs != "" {
		_ = json.Unmarshal([]byte(m.Needs), &needs)
	}
	var photos []string
	if m.Photos != "" {
		_ = json.Unmarshal([]byte(m.Photos), &photos)
	}
	return &beneficiary.Orphan{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Age:          m.Age,
		Gender:       beneficiary.Gender(m.Gender),
		HealthStatus: m.HealthStatus,
		OrphanageID:  m.OrphanageID,
		Location:     beneficiary.Location{City: m.City, Country: m.Country},
		Needs:        needs,
		IsSponsored:  m.IsSponsored,
		Bio:          m.Bio,
		Photos:       photos,
	}
}

// FromDomain populates the persistence model from a domain Orphan entity.
func (m *OrphanModel) FromDomain(o *beneficiary.Orphan) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
	m.Age = o.Age
	m.Gender = string(o.Gender)
	m.HealthStatus = o.HealthStatus
	m.OrphanageID = o.OrphanageID
	m.City = o.Location.City
	m.Country = o.Location.Country
	if len(o.Needs) > 0 {
		data, _ := json.Marshal(o.Needs)
		m.Needs = string(data)
	}
	m.IsSponsored = o.IsSponsored
	m.Bio = o.Bio
	if len(o.Photos) > 0 {
		data, _ := json.Marshal(o.Photos)
		m.Photos = string(data)
	}
}

// CampaignModel is the persistence model for the Campaign domain entity.
type CampaignModel struct {
	BaseModel
	Title        string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	OrphanageID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AmountRaised decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status       string          `gorm:"type:varchar(20);not null;default:'active';index"`
	Images       string          `gorm:"type:jsonb"`
	StartDate    time.Time
	EndDate      time.Time
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign entity.
func (m *CampaignModel) ToDomain() *beneficiary.Campaign {
	var images []string
	if m.Images != "" {
		_ = json.Unmarshal([]byte(m.Images), &images)
	}
	return &beneficiary.Campaign{
		BaseEntity:   m.BaseModel.ToDomain(),
		Title:        m.Title,
		Description:  m.Description,
		OrphanageID:  m.OrphanageID,
		TargetAmount: valueobject.NewMoney(m.TargetAmount),
		AmountRaised: valueobject.NewMoney(m.AmountRaised),
		Status:       beneficiary.CampaignStatus(m.Status),
		Images:       images,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
	}
}

// FromDomain populates the persistence model from a domain Campaign entity.
func (m *CampaignModel) FromDomain(c *beneficiary.Campaign) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Title = c.Title
	m.Description = c.Description
	m.OrphanageID = c.OrphanageID
	m.TargetAmount = c.TargetAmount.Amount()
	m.AmountRaised = c.AmountRaised.Amount()
	m.Status = c.Status.String()
	if len(c.Images) > 0 {
		data, _ := json.Marshal(c.Images)
		m.Images = string(data)
	}
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
}
