package billing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/memstore"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/bills", h.ListBills)
	api.GET("/bills/:id", h.GetBill)
	api.POST("/bills", h.CreateBill)
	api.PUT("/bills/:id", h.UpdateBill)
	api.DELETE("/bills/:id", h.DeleteBill)
	api.POST("/bills/:id/pay", h.PayBill)
}

func (h *Handler) CreateBill(c echo.Context) error {
	var b Bill
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateBill(c.Request().Context(), &b)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetBill(c echo.Context) error {
	b, err := h.svc.GetBill(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

// ListBills accepts optional patient_id and status filters; patient_id wins
// when both are present. A status of "all" means no status filter.
func (h *Handler) ListBills(c echo.Context) error {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)

	status := c.QueryParam("status")
	var (
		items []*Bill
		err   error
	)
	switch {
	case c.QueryParam("patient_id") != "":
		items, err = h.svc.ListByPatient(ctx, c.QueryParam("patient_id"))
	case status != "" && status != "all":
		items, err = h.svc.ListByStatus(ctx, status)
	default:
		items, err = h.svc.ListBills(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	total := len(items)
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateBill(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.UpdateBill(c.Request().Context(), c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBill(c echo.Context) error {
	if err := h.svc.DeleteBill(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PayBill(c echo.Context) error {
	b, err := h.svc.MarkAsPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func httpError(err error) error {
	switch {
	case errors.Is(err, memstore.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, memstore.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
