package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/overview", h.GetOverview)
	api.GET("/dashboard/metrics", h.GetMetrics)
	api.GET("/dashboard/billing", h.GetBillingStats)
	api.GET("/dashboard/activity", h.GetRecentActivity)
}

func (h *Handler) GetOverview(c echo.Context) error {
	ov, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ov)
}

func (h *Handler) GetMetrics(c echo.Context) error {
	m, err := h.svc.Metrics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) GetBillingStats(c echo.Context) error {
	st, err := h.svc.BillingStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) GetRecentActivity(c echo.Context) error {
	ra, err := h.svc.RecentActivity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ra)
}
