package beneficiary

import (
	"context"

	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrphanService serves orphan reads for browsing and cart display
type OrphanService struct {
	orphans beneficiary.OrphanRepository
}

// NewOrphanService creates an OrphanService
func NewOrphanService(orphans beneficiary.OrphanRepository) *OrphanService {
	return &OrphanService{orphans: orphans}
}

// GetByID returns one orphan
func (s *OrphanService) GetByID(ctx context.Context, id uuid.UUID) (*OrphanResponse, error) {
	orphan, err := s.orphans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrphanResponse(orphan)
	return &resp, nil
}

// List returns a page of orphans
func (s *OrphanService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrphanResponse], error) {
	orphans, total, err := s.orphans.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]OrphanResponse, 0, len(orphans))
	for i := range orphans {
		out = append(out, ToOrphanResponse(&orphans[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByOrphanage returns a page of one orphanage's orphans
func (s *OrphanService) ListByOrphanage(ctx context.Context, orphanageID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrphanResponse], error) {
	orphans, total, err := s.orphans.FindByOrphanage(ctx, orphanageID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]OrphanResponse, 0, len(orphans))
	for i := range orphans {
		out = append(out, ToOrphanResponse(&orphans[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}
