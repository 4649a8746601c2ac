package donation

import (
	appcart "github.com/givehope/backend/internal/application/cart"
	"github.com/givehope/backend/internal/domain/donation"
)

// CheckoutSessionResponse is returned when a provider session is created
type CheckoutSessionResponse struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
}

// DonationResponse is the wire shape of one donation record
type DonationResponse struct {
	ID                string                 `json:"id"`
	DonorID           string                 `json:"donor_id,omitempty"`
	Items             []appcart.LineResponse `json:"items"`
	TotalAmount       string                 `json:"total_amount"`
	PaymentMethod     string                 `json:"payment_method"`
	CheckoutSessionID string                 `json:"checkout_session_id"`
	TransactionStatus string                 `json:"transaction_status"`
	CreatedAt         string                 `json:"created_at"`
}

// ItemViewResponse is one flattened donation line for history endpoints
type ItemViewResponse struct {
	DonationID    string `json:"donation_id"`
	DonationType  string `json:"donation_type"`
	RecipientID   string `json:"recipient_id"`
	RecipientName string `json:"recipient_name"`
	OrphanageID   string `json:"orphanage_id"`
	Amount        string `json:"amount"`
	PaidAt        string `json:"paid_at"`
}

// OrphanageSummaryResponse groups donations received by one orphanage
type OrphanageSummaryResponse struct {
	OrphanageID string             `json:"orphanage_id"`
	TotalAmount string             `json:"total_amount"`
	Donations   []ItemViewResponse `json:"donations"`
}

// ToDonationResponse converts a domain donation record
func ToDonationResponse(d *donation.Donation) DonationResponse {
	items := make([]appcart.LineResponse, 0, len(d.Items))
	for _, line := range d.Items {
		items = append(items, appcart.ToLineResponse(line))
	}
	resp := DonationResponse{
		ID:                d.ID.String(),
		Items:             items,
		TotalAmount:       d.TotalAmount.Amount().String(),
		PaymentMethod:     d.PaymentMethod,
		CheckoutSessionID: d.CheckoutSessionID,
		TransactionStatus: string(d.TransactionStatus),
		CreatedAt:         d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if d.DonorID != nil {
		resp.DonorID = d.DonorID.String()
	}
	return resp
}

// ToDonationResponses converts a slice of donation records
func ToDonationResponses(records []donation.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(records))
	for i := range records {
		out = append(out, ToDonationResponse(&records[i]))
	}
	return out
}

// ToItemViewResponse converts one flattened donation line
func ToItemViewResponse(v donation.ItemView) ItemViewResponse {
	return ItemViewResponse{
		DonationID:    v.DonationID.String(),
		DonationType:  v.Kind.String(),
		RecipientID:   v.RecipientID.String(),
		RecipientName: v.RecipientName,
		OrphanageID:   v.OrphanageID.String(),
		Amount:        v.Amount.Amount().String(),
		PaidAt:        v.PaidAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
