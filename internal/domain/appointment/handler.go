package appointment

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
	api.GET("/appointments", h.ListAppointments)
	api.GET("/appointments/:id", h.GetAppointment)
	api.POST("/appointments", h.CreateAppointment)
	api.PUT("/appointments/:id", h.UpdateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
	api.POST("/appointments/:id/complete", h.CompleteAppointment)
	api.POST("/appointments/:id/cancel", h.CancelAppointment)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), &a)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	a, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

// ListAppointments accepts optional patient_id, doctor_id, status, from and
// to filters. Filters are applied one at a time in that order of precedence,
// except from/to which combine into a single date-range query. A status of
// "all" means no status filter.
func (h *Handler) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)

	status := c.QueryParam("status")
	var (
		items []*Appointment
		err   error
	)
	switch {
	case c.QueryParam("patient_id") != "":
		items, err = h.svc.ListByPatient(ctx, c.QueryParam("patient_id"))
	case c.QueryParam("doctor_id") != "":
		items, err = h.svc.ListByDoctor(ctx, c.QueryParam("doctor_id"))
	case status != "" && status != "all":
		items, err = h.svc.ListByStatus(ctx, status)
	case c.QueryParam("from") != "" || c.QueryParam("to") != "":
		items, err = h.svc.ListByDateRange(ctx, c.QueryParam("from"), c.QueryParam("to"))
	default:
		items, err = h.svc.ListAppointments(ctx)
	}
	if err != nil {
		return httpError(err)
	}
	total := len(items)
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.UpdateAppointment(c.Request().Context(), c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	if err := h.svc.DeleteAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CompleteAppointment(c echo.Context) error {
	a, err := h.svc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CancelAppointment(c echo.Context) error {
	a, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
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
