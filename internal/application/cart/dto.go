package cart

import (
	"github.com/givehope/backend/internal/domain/beneficiary"
	"github.com/givehope/backend/internal/domain/cart"
	"github.com/google/uuid"
)

// Owner identifies whose cart an operation targets: an authenticated user,
// a guest session, or both during the request that merges them
type Owner struct {
	UserID    *uuid.UUID
	SessionID string
}

// IsAuthenticated reports whether the owner is a signed-in user
func (o Owner) IsAuthenticated() bool {
	return o.UserID != nil
}

// AddItemRequest is the payload for adding a line to the cart
type AddItemRequest struct {
	DonationType string  `json:"donation_type" binding:"required"`
	RecipientID  string  `json:"recipient_id" binding:"required,uuid"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateAmountRequest is the payload for replacing a line's amount
type UpdateAmountRequest struct {
	RecipientID string  `json:"recipient_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// LineResponse is the wire shape of one cart line
type LineResponse struct {
	DonationType string `json:"donation_type"`
	RecipientID  string `json:"recipient_id"`
	Amount       string `json:"amount"`
}

// RecipientDetails carries the display fields of a line's recipient
type RecipientDetails struct {
	Name         string   `json:"name"`
	Images       []string `json:"images,omitempty"`
	TargetAmount string   `json:"target_amount,omitempty"`
	AmountRaised string   `json:"amount_raised,omitempty"`
}

// DetailedLineResponse pairs a line with its recipient details
type DetailedLineResponse struct {
	LineResponse
	Details RecipientDetails `json:"details"`
}

// CartResponse is the full cart view returned by read operations
type CartResponse struct {
	Items []DetailedLineResponse `json:"items"`
	Total string                 `json:"total"`
}

// ToLineResponse converts a domain line
func ToLineResponse(line cart.Line) LineResponse {
	return LineResponse{
		DonationType: line.Kind.String(),
		RecipientID:  line.RecipientID.String(),
		Amount:       line.Amount.Amount().String(),
	}
}

// ToCartResponse converts a detailed cart
func ToCartResponse(valid cart.Cart, detailed []cart.DetailedLine) CartResponse {
	items := make([]DetailedLineResponse, 0, len(detailed))
	for _, d := range detailed {
		item := DetailedLineResponse{
			LineResponse: ToLineResponse(d.Line),
			Details: RecipientDetails{
				Name:   d.Recipient.Name,
				Images: d.Recipient.Images,
			},
		}
		if d.Recipient.Kind == beneficiary.RecipientKindCampaign {
			item.Details.TargetAmount = d.Recipient.TargetAmount.Amount().String()
			item.Details.AmountRaised = d.Recipient.AmountRaised.Amount().String()
		}
		items = append(items, item)
	}
	return CartResponse{
		Items: items,
		Total: valid.Total().Amount().String(),
	}
}
