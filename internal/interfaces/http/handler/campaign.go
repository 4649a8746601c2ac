package handler

import (
	"github.com/gin-gonic/gin"
	appbeneficiary "github.com/givehope/backend/internal/application/beneficiary"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
)

// CampaignHandler handles campaign read API endpoints
type CampaignHandler struct {
	BaseHandler
	campaigns *appbeneficiary.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaigns *appbeneficiary.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// CampaignListRequest represents campaign list query parameters
type CampaignListRequest struct {
	dto.ListRequest
	Status      string `form:"status" binding:"omitempty,oneof=active completed canceled"`
	OrphanageID string `form:"orphanage_id" binding:"omitempty,uuid"`
}

// Get godoc
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Param        id path string true "Campaign ID" format(uuid)
// @Success      200 {object} dto.Response{data=beneficiary.CampaignResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID format")
		return
	}

	campaign, err := h.campaigns.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, campaign)
}

// List godoc
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Filter by status"
// @Param        orphanage_id query string false "Filter by orphanage" format(uuid)
// @Success      200 {object} dto.Response{data=[]beneficiary.CampaignResponse}
// @Router       /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	req := CampaignListRequest{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := listFilter(req.ListRequest)
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}

	var (
		page *shared.Paginated[appbeneficiary.CampaignResponse]
		err  error
	)
	if req.OrphanageID != "" {
		orphanageID, parseErr := uuid.Parse(req.OrphanageID)
		if parseErr != nil {
			h.BadRequest(c, "Invalid orphanage ID format")
			return
		}
		page, err = h.campaigns.ListByOrphanage(c.Request.Context(), orphanageID, filter)
	} else {
		page, err = h.campaigns.List(c.Request.Context(), filter)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// listFilter converts list query parameters to a repository filter
func listFilter(req dto.ListRequest) shared.Filter {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}
	return filter
}
