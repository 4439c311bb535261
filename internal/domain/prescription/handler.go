package prescription

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
	api.GET("/prescriptions", h.ListPrescriptions)
	api.GET("/prescriptions/:id", h.GetPrescription)
	api.POST("/prescriptions", h.CreatePrescription)
	api.PUT("/prescriptions/:id", h.UpdatePrescription)
	api.DELETE("/prescriptions/:id", h.DeletePrescription)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreatePrescription(c.Request().Context(), &p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	p, err := h.svc.GetPrescription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

// ListPrescriptions accepts optional patient_id, doctor_id, appointment_id
// and q filters, applied one at a time in that order of precedence.
func (h *Handler) ListPrescriptions(c echo.Context) error {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)

	var (
		items []*Prescription
		err   error
	)
	switch {
	case c.QueryParam("patient_id") != "":
		items, err = h.svc.ListByPatient(ctx, c.QueryParam("patient_id"))
	case c.QueryParam("doctor_id") != "":
		items, err = h.svc.ListByDoctor(ctx, c.QueryParam("doctor_id"))
	case c.QueryParam("appointment_id") != "":
		items, err = h.svc.ListByAppointment(ctx, c.QueryParam("appointment_id"))
	default:
		items, err = h.svc.SearchPrescriptions(ctx, c.QueryParam("q"))
	}
	if err != nil {
		return httpError(err)
	}
	total := len(items)
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdatePrescription(c.Request().Context(), c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	if err := h.svc.DeletePrescription(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func httpError(err error) error {
	if errors.Is(err, memstore.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
