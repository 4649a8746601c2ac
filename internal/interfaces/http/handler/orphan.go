package handler

import (
	"github.com/gin-gonic/gin"
	appbeneficiary "github.com/givehope/backend/internal/application/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
)

// OrphanHandler handles orphan read API endpoints
type OrphanHandler struct {
	BaseHandler
	orphans *appbeneficiary.OrphanService
}

// NewOrphanHandler creates a new OrphanHandler
func NewOrphanHandler(orphans *appbeneficiary.OrphanService) *OrphanHandler {
	return &OrphanHandler{orphans: orphans}
}

// OrphanListRequest represents orphan list query parameters
type OrphanListRequest struct {
	dto.ListRequest
	Gender      string `form:"gender" binding:"omitempty,oneof=male female"`
	Country     string `form:"country"`
	IsSponsored *bool  `form:"is_sponsored"`
	OrphanageID string `form:"orphanage_id" binding:"omitempty,uuid"`
}

// Get godoc
// @Summary      Get an orphan profile
// @Tags         orphans
// @Produce      json
// @Param        id path string true "Orphan ID" format(uuid)
// @Success      200 {object} dto.Response{data=beneficiary.OrphanResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orphans/{id} [get]
func (h *OrphanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid orphan ID format")
		return
	}

	orphan, err := h.orphans.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orphan)
}

// List godoc
// @Summary      List orphans
// @Tags         orphans
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        gender query string false "Filter by gender"
// @Param        country query string false "Filter by country"
// @Param        is_sponsored query bool false "Filter by sponsorship"
// @Param        orphanage_id query string false "Filter by orphanage" format(uuid)
// @Success      200 {object} dto.Response{data=[]beneficiary.OrphanResponse}
// @Router       /orphans [get]
func (h *OrphanHandler) List(c *gin.Context) {
	req := OrphanListRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := listFilter(req.ListRequest)
	if req.Gender != "" {
		filter.Filters["gender"] = req.Gender
	}
	if req.Country != "" {
		filter.Filters["country"] = req.Country
	}
	if req.IsSponsored != nil {
		filter.Filters["is_sponsored"] = *req.IsSponsored
	}

	var (
		page *shared.Paginated[appbeneficiary.OrphanResponse]
		err  error
	)
	if req.OrphanageID != "" {
		orphanageID, parseErr := uuid.Parse(req.OrphanageID)
		if parseErr != nil {
			h.BadRequest(c, "Invalid orphanage ID format")
			return
		}
		page, err = h.orphans.ListByOrphanage(c.Request.Context(), orphanageID, filter)
	} else {
		page, err = h.orphans.List(c.Request.Context(), filter)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
