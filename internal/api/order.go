package api

import (
	"github.com/labstack/echo/v4"

	"github.com/brentsteel/lunchmenu/internal/entity"
	"github.com/brentsteel/lunchmenu/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// SubmitOrder prices and persists a selection --> POST /orders
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	sel := entity.Selection{}
	if err := c.Bind(&sel); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	order, err := h.orderService.Submit(c.Request().Context(), sel)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(201, order)
}

// ListOrders returns order history with summary stats --> GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, summary, err := h.orderService.History(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, map[string]interface{}{
		"orders":  orders,
		"summary": summary,
	})
}
