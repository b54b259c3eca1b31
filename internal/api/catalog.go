package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brentsteel/lunchmenu/internal/service"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	offerPrice     float64
}

func NewCatalogHandler(catalogService *service.CatalogService, offerPrice float64) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		offerPrice:     offerPrice,
	}
}

type menuItemRequest struct {
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Category  string  `json:"category" validate:"required,oneof=sandwich crisps snack"`
	IsPremium bool    `json:"is_premium"`
	IsActive  bool    `json:"is_active"`
}

// GetMenu returns the active catalog grouped by category --> GET /menu
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	catalog, err := h.catalogService.ActiveCatalog(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, map[string]interface{}{
		"menu":        catalog,
		"offer_price": h.offerPrice,
	})
}

// AdminListMenu returns every item, inactive included --> GET /admin/menu
func (h *CatalogHandler) AdminListMenu(c echo.Context) error {
	items, err := h.catalogService.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, map[string]interface{}{"items": items})
}

// AdminAddItem creates a menu item --> POST /admin/menu
func (h *CatalogHandler) AdminAddItem(c echo.Context) error {
	req := menuItemRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.catalogService.AddItem(c.Request().Context(), req.Name, req.Price, req.Category, req.IsPremium)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(201, item)
}

// AdminEditItem replaces an item's mutable fields --> PUT /admin/menu/:id
func (h *CatalogHandler) AdminEditItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	req := menuItemRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.catalogService.EditItem(c.Request().Context(), id, req.Name, req.Price, req.Category, req.IsPremium, req.IsActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, item)
}

// AdminDeleteItem soft-deletes an item --> DELETE /admin/menu/:id
func (h *CatalogHandler) AdminDeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid ID"})
	}

	if err := h.catalogService.DeleteItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, map[string]string{"message": "Menu item deactivated"})
}
