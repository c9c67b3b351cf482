package inventory

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medidash/medidash/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// itemResponse carries the derived stock status next to the stored fields.
type itemResponse struct {
	*InventoryItem
	StockStatus string `json:"stockStatus"`
}

func toResponse(items []*InventoryItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemResponse{InventoryItem: item, StockStatus: StockStatus(item.Stock)})
	}
	return out
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole(auth.RoleOwner, auth.RoleDoctor, auth.RolePharmacy))
	readGroup.GET("/inventory", h.ListItems)
	readGroup.GET("/inventory/reorder", h.ReorderList)
	readGroup.GET("/inventory/:id", h.GetItem)

	writeGroup := api.Group("", auth.RequireRole(auth.RolePharmacy))
	writeGroup.POST("/inventory", h.CreateItem)
	writeGroup.PUT("/inventory/:id", h.UpdateItem)
	writeGroup.DELETE("/inventory/:id", h.DeleteItem)
}

func (h *Handler) CreateItem(c echo.Context) error {
	var i InventoryItem
	if err := c.Bind(&i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateItem(c.Request().Context(), &i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, itemResponse{InventoryItem: &i, StockStatus: StockStatus(i.Stock)})
}

func (h *Handler) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	i, err := h.svc.GetItem(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
	}
	return c.JSON(http.StatusOK, itemResponse{InventoryItem: i, StockStatus: StockStatus(i.Stock)})
}

func (h *Handler) ListItems(c echo.Context) error {
	items, err := h.svc.ListItems(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toResponse(items))
}

func (h *Handler) ReorderList(c echo.Context) error {
	items, err := h.svc.ReorderList(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toResponse(items))
}

func (h *Handler) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var i InventoryItem
	if err := c.Bind(&i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	i.ID = id
	if err := h.svc.UpdateItem(c.Request().Context(), &i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, itemResponse{InventoryItem: &i, StockStatus: StockStatus(i.Stock)})
}

func (h *Handler) DeleteItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteItem(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
