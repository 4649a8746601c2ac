package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/domain/donation"
	"github.com/givehope/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"go.uber.org/zap"
)

const (
	metadataCartKey  = "cart"
	metadataDonorKey = "donor_id"

	// Stripe caps each metadata value at 500 characters, so the cart
	// payload is split across cart, cart_1, cart_2, ... keys.
	metadataValueMaxLen = 500
	metadataMaxChunks   = 40
)

// StripeCheckoutProvider implements donation.CheckoutProvider on Stripe
// hosted checkout. The cart payload rides in session metadata so the
// confirmation path reconciles exactly what was paid for, independent of
// any cart mutations that happened during payment.
type StripeCheckoutProvider struct {
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

// NewStripeCheckoutProvider creates a Stripe checkout provider and sets the
// global API key
func NewStripeCheckoutProvider(cfg config.StripeConfig, logger *zap.Logger) (*StripeCheckoutProvider, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe: secret key is required")
	}
	if cfg.SuccessURL == "" || cfg.CancelURL == "" {
		return nil, fmt.Errorf("stripe: success and cancel URLs are required")
	}

	stripe.Key = cfg.SecretKey

	return &StripeCheckoutProvider{
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		logger:     logger,
	}, nil
}

// CreateSession opens a hosted checkout session for the given items
func (p *StripeCheckoutProvider) CreateSession(ctx context.Context, req donation.CreateCheckoutRequest) (*donation.CheckoutSession, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to encode cart payload: %w", err)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  buildLineItems(req.Items),
		SuccessURL: stripe.String(p.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.cancelURL),
	}
	params.Context = ctx
	chunks := chunkMetadataValue(string(payload))
	if len(chunks) > metadataMaxChunks {
		return nil, fmt.Errorf("stripe: cart payload exceeds metadata capacity")
	}
	for i, chunk := range chunks {
		params.AddMetadata(cartChunkKey(i), chunk)
	}
	if req.DonorID != nil {
		params.AddMetadata(metadataDonorKey, req.DonorID.String())
	}

	sess, err := session.New(params)
	if err != nil {
		p.logger.Error("Failed to create Stripe checkout session", zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	p.logger.Info("Created Stripe checkout session",
		zap.String("session_id", sess.ID),
		zap.Int("line_count", len(req.Items)))

	return &donation.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// RetrieveSession fetches a session and decodes the cart payload captured
// at creation time
func (p *StripeCheckoutProvider) RetrieveSession(ctx context.Context, sessionID string) (*donation.CheckoutConfirmation, error) {
	params := &stripe.CheckoutSessionParams{
		Expand: []*string{stripe.String("payment_intent.payment_method")},
	}
	params.Context = ctx

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to retrieve checkout session: %w", err)
	}

	confirmation := &donation.CheckoutConfirmation{
		SessionID:        sess.ID,
		Paid:             sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotalCents: sess.AmountTotal,
	}
	if sess.PaymentIntent != nil && sess.PaymentIntent.PaymentMethod != nil {
		confirmation.PaymentMethod = string(sess.PaymentIntent.PaymentMethod.Type)
	}

	if raw := joinCartMetadata(sess.Metadata); raw != "" {
		var payload cart.Cart
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, fmt.Errorf("stripe: corrupt cart payload in session metadata: %w", err)
		}
		confirmation.Payload = payload
	}
	if raw, ok := sess.Metadata[metadataDonorKey]; ok && raw != "" {
		donorID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("stripe: corrupt donor id in session metadata: %w", err)
		}
		confirmation.DonorID = &donorID
	}

	return confirmation, nil
}

// cartChunkKey returns the metadata key for the nth payload chunk. The first
// chunk keeps the bare key so single-chunk sessions stay readable in the
// Stripe dashboard.
func cartChunkKey(i int) string {
	if i == 0 {
		return metadataCartKey
	}
	return fmt.Sprintf("%s_%d", metadataCartKey, i)
}

// chunkMetadataValue splits a payload into metadata-sized pieces
func chunkMetadataValue(s string) []string {
	chunks := make([]string, 0, len(s)/metadataValueMaxLen+1)
	for len(s) > metadataValueMaxLen {
		chunks = append(chunks, s[:metadataValueMaxLen])
		s = s[metadataValueMaxLen:]
	}
	return append(chunks, s)
}

// joinCartMetadata reassembles the cart payload from its chunk keys
func joinCartMetadata(metadata map[string]string) string {
	raw := metadata[metadataCartKey]
	if raw == "" {
		return ""
	}
	for i := 1; ; i++ {
		chunk, ok := metadata[cartChunkKey(i)]
		if !ok {
			break
		}
		raw += chunk
	}
	return raw
}

// buildLineItems converts checkout items to Stripe price data. Each item is
// a one-off price in cents; nothing is pre-registered in the Stripe catalog.
func buildLineItems(items []donation.CheckoutItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if len(item.Images) > 0 {
			productData.Images = stripe.StringSlice(item.Images)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount:  stripe.Int64(item.AmountCents),
				ProductData: productData,
			},
			Quantity: stripe.Int64(1),
		})
	}
	return lineItems
}

// Ensure StripeCheckoutProvider implements donation.CheckoutProvider
var _ donation.CheckoutProvider = (*StripeCheckoutProvider)(nil)
