package handler

import (
	"github.com/gin-gonic/gin"
	appdonation "github.com/givehope/backend/internal/application/donation"
	"github.com/google/uuid"
)

// DonationHandler handles checkout and donation history API endpoints
type DonationHandler struct {
	BaseHandler
	checkout       *appdonation.CheckoutService
	reconciliation *appdonation.ReconciliationService
	queries        *appdonation.QueryService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(
	checkout *appdonation.CheckoutService,
	reconciliation *appdonation.ReconciliationService,
	queries *appdonation.QueryService,
) *DonationHandler {
	return &DonationHandler{
		checkout:       checkout,
		reconciliation: reconciliation,
		queries:        queries,
	}
}

// CreateCheckout godoc
// @Summary      Start a payment session for the current cart
// @Description  Revalidates and clamps every cart line, then opens a provider checkout session
// @Tags         donations
// @Produce      json
// @Success      201 {object} dto.Response{data=donation.CheckoutSessionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /donations/checkout [post]
func (h *DonationHandler) CreateCheckout(c *gin.Context) {
	session, err := h.checkout.CreateCheckout(c.Request.Context(), cartOwner(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}

// ConfirmCheckout godoc
// @Summary      Confirm a paid checkout session
// @Description  Records the donation and applies campaign totals exactly once per session
// @Tags         donations
// @Produce      json
// @Param        session_id query string true "Provider checkout session ID"
// @Success      200 {object} dto.Response{data=donation.DonationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /donations/success [get]
func (h *DonationHandler) ConfirmCheckout(c *gin.Context) {
	sessionID := c.Query("session_id")

	record, err := h.reconciliation.ConfirmCheckout(c.Request.Context(), sessionID, cartOwner(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// List godoc
// @Summary      List all donations
// @Tags         donations
// @Produce      json
// @Success      200 {object} dto.Response{data=[]donation.DonationResponse}
// @Router       /donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	records, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// ListByDonor godoc
// @Summary      List a donor's donations
// @Tags         donations
// @Produce      json
// @Param        id path string true "Donor ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]donation.DonationResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /donations/user/{id} [get]
func (h *DonationHandler) ListByDonor(c *gin.Context) {
	donorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid donor ID format")
		return
	}

	records, err := h.queries.ListByDonor(c.Request.Context(), donorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// OrphanageSummary godoc
// @Summary      Donation totals grouped by orphanage
// @Tags         donations
// @Produce      json
// @Success      200 {object} dto.Response{data=[]donation.OrphanageSummaryResponse}
// @Router       /donations/orphanages [get]
func (h *DonationHandler) OrphanageSummary(c *gin.Context) {
	summaries, err := h.queries.SummarizeByOrphanage(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summaries)
}

// ListByOrphanage godoc
// @Summary      Paid donation items for one orphanage
// @Tags         donations
// @Produce      json
// @Param        id path string true "Orphanage ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]donation.ItemViewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /donations/orphanage/{id} [get]
func (h *DonationHandler) ListByOrphanage(c *gin.Context) {
	orphanageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid orphanage ID format")
		return
	}

	items, err := h.queries.ListItemsByOrphanage(c.Request.Context(), orphanageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}
