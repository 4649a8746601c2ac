package donation

import (
	"context"

	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// QueryService serves donation history reads
type QueryService struct {
	donations donation.Repository
}

// NewQueryService creates a QueryService
func NewQueryService(donations donation.Repository) *QueryService {
	return &QueryService{donations: donations}
}

// ListAll returns every donation record, newest first
func (s *QueryService) ListAll(ctx context.Context) ([]DonationResponse, error) {
	records, err := s.donations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToDonationResponses(records), nil
}

// ListByDonor returns the donor's donation records, newest first
func (s *QueryService) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]DonationResponse, error) {
	records, err := s.donations.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	return ToDonationResponses(records), nil
}

// ListItemsByOrphanage returns the flattened paid lines received by one
// orphanage's orphans and campaigns
func (s *QueryService) ListItemsByOrphanage(ctx context.Context, orphanageID uuid.UUID) ([]ItemViewResponse, error) {
	views, err := s.donations.ListItems(ctx, &orphanageID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToItemViewResponse(v))
	}
	return out, nil
}

// SummarizeByOrphanage groups every paid line by the receiving orphanage
// with a running total per group. Group order follows first appearance in
// the underlying listing, lines within a group keep that order too.
func (s *QueryService) SummarizeByOrphanage(ctx context.Context) ([]OrphanageSummaryResponse, error) {
	views, err := s.donations.ListItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	order := make([]uuid.UUID, 0)
	totals := make(map[uuid.UUID]valueobject.Money)
	grouped := make(map[uuid.UUID][]ItemViewResponse)
	for _, v := range views {
		if _, seen := totals[v.OrphanageID]; !seen {
			order = append(order, v.OrphanageID)
			totals[v.OrphanageID] = valueobject.Zero()
		}
		totals[v.OrphanageID] = totals[v.OrphanageID].Add(v.Amount)
		grouped[v.OrphanageID] = append(grouped[v.OrphanageID], ToItemViewResponse(v))
	}

	out := make([]OrphanageSummaryResponse, 0, len(order))
	for _, id := range order {
		out = append(out, OrphanageSummaryResponse{
			OrphanageID: id.String(),
			TotalAmount: totals[id].Amount().String(),
			Donations:   grouped[id],
		})
	}
	return out, nil
}
