package beneficiary

import (
	"time"

	"github.com/givehope/backend/internal/domain/beneficiary"
)

// CampaignResponse is the wire shape of one campaign
type CampaignResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	OrphanageID  string   `json:"orphanage_id"`
	TargetAmount string   `json:"target_amount"`
	AmountRaised string   `json:"amount_raised"`
	Remaining    string   `json:"remaining"`
	Status       string   `json:"status"`
	Images       []string `json:"images,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// OrphanResponse is the wire shape of one orphan
type OrphanResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Age          int        `json:"age"`
	Gender       string     `json:"gender"`
	HealthStatus string     `json:"health_status,omitempty"`
	OrphanageID  string     `json:"orphanage_id"`
	City         string     `json:"city,omitempty"`
	Country      string     `json:"country,omitempty"`
	Needs        []NeedView `json:"needs,omitempty"`
	IsSponsored  bool       `json:"is_sponsored"`
	Bio          string     `json:"bio,omitempty"`
	Photos       []string   `json:"photos,omitempty"`
}

// NeedView is one support category of an orphan
type NeedView struct {
	Category       string  `json:"category"`
	AmountNeeded   float64 `json:"amount_needed"`
	AmountReceived float64 `json:"amount_received"`
}

// ToCampaignResponse converts a domain campaign
func ToCampaignResponse(c *beneficiary.Campaign) CampaignResponse {
	resp := CampaignResponse{
		ID:           c.ID.String(),
		Title:        c.Title,
		Description:  c.Description,
		OrphanageID:  c.OrphanageID.String(),
		TargetAmount: c.TargetAmount.Amount().String(),
		AmountRaised: c.AmountRaised.Amount().String(),
		Remaining:    c.Headroom().Amount().String(),
		Status:       c.Status.String(),
		Images:       c.Images,
	}
	if !c.StartDate.IsZero() {
		resp.StartDate = c.StartDate.UTC().Format(time.RFC3339)
	}
	if !c.EndDate.IsZero() {
		resp.EndDate = c.EndDate.UTC().Format(time.RFC3339)
	}
	return resp
}

// ToOrphanResponse converts a domain orphan
func ToOrphanResponse(o *beneficiary.Orphan) OrphanResponse {
	needs := make([]NeedView, 0, len(o.Needs))
	for _, n := range o.Needs {
		needs = append(needs, NeedView{
			Category:       n.Category,
			AmountNeeded:   n.AmountNeeded,
			AmountReceived: n.AmountReceived,
		})
	}
	return OrphanResponse{
		ID:           o.ID.String(),
		Name:         o.Name,
		Age:          o.Age,
		Gender:       string(o.Gender),
		HealthStatus: o.HealthStatus,
		OrphanageID:  o.OrphanageID.String(),
		City:         o.Location.City,
		Country:      o.Location.Country,
		Needs:        needs,
		IsSponsored:  o.IsSponsored,
		Bio:          o.Bio,
		Photos:       o.Photos,
	}
}
