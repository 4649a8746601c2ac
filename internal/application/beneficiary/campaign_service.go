package beneficiary

import (
	"context"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CampaignService serves campaign reads for browsing and cart display
type CampaignService struct {
	campaigns beneficiary.CampaignRepository
}

// NewCampaignService creates a CampaignService
func NewCampaignService(campaigns beneficiary.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

// GetByID returns one campaign
func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCampaignResponse(campaign)
	return &resp, nil
}

// List returns a page of campaigns
func (s *CampaignService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CampaignResponse], error) {
	campaigns, total, err := s.campaigns.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, ToCampaignResponse(&campaigns[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByOrphanage returns a page of one orphanage's campaigns
func (s *CampaignService) ListByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) (*shared.Paginated[CampaignResponse], error) {
	campaigns, total, err := s.campaigns.FindByOrphanage(ctx, orphanageID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, ToCampaignResponse(&campaigns[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}
