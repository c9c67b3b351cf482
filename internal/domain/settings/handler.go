package settings

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medidash/medidash/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole(auth.RoleOwner, auth.RoleDoctor, auth.RoleLab, auth.RolePharmacy, auth.RolePatient))
	readGroup.GET("/settings", h.GetSettings)

	writeGroup := api.Group("", auth.RequireRole(auth.RoleOwner))
	writeGroup.PUT("/settings", h.SaveSettings)
}

func (h *Handler) GetSettings(c echo.Context) error {
	s, err := h.svc.GetSettings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "settings not configured")
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) SaveSettings(c echo.Context) error {
	var s ClinicSettings
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SaveSettings(c.Request().Context(), &s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, s)
}
