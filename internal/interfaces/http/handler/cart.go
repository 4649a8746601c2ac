package handler

import (
	"github.com/gin-gonic/gin"
	appcart "github.com/givehope/backend/internal/application/cart"
	"github.com/google/uuid"
)

// CartHandler handles cart API endpoints
type CartHandler struct {
	BaseHandler
	carts *appcart.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts *appcart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get godoc
// @Summary      View the cart
// @Description  Returns the cart with every line revalidated against live recipient state
// @Tags         cart
// @Produce      json
// @Success      200 {object} dto.Response{data=cart.CartResponse}
// @Router       /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.carts.View(c.Request.Context(), cartOwner(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// AddItem godoc
// @Summary      Add a donation line to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body cart.AddItemRequest true "Line to add"
// @Success      201 {object} dto.Response{data=cart.LineResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req appcart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.carts.AddItem(c.Request.Context(), cartOwner(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, line)
}

// UpdateAmount godoc
// @Summary      Replace a line's amount
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body cart.UpdateAmountRequest true "New amount for the line"
// @Success      200 {object} dto.Response{data=cart.LineResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/amount [patch]
func (h *CartHandler) UpdateAmount(c *gin.Context) {
	var req appcart.UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	line, err := h.carts.UpdateAmount(c.Request.Context(), cartOwner(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, line)
}

// RemoveItem godoc
// @Summary      Remove a line from the cart
// @Tags         cart
// @Produce      json
// @Param        id path string true "Recipient ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /cart/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipient ID format")
		return
	}

	if _, err := h.carts.RemoveItem(c.Request.Context(), cartOwner(c), recipientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Success      204
// @Router       /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), cartOwner(c)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
