package doctor

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
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.POST("/doctors", h.CreateDoctor)
	api.PUT("/doctors/:id", h.UpdateDoctor)
	api.DELETE("/doctors/:id", h.DeleteDoctor)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateDoctor(c.Request().Context(), &d)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d, err := h.svc.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	query := c.QueryParam("q")
	facet := c.QueryParam("specialization")

	var (
		items []*Doctor
		err   error
	)
	if query == "" && (facet == "" || facet == "all") {
		items, err = h.svc.ListDoctors(c.Request().Context())
	} else {
		items, err = h.svc.FilterDoctors(c.Request().Context(), query, facet)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total := len(items)
	page := pagination.Page(items, pg)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.UpdateDoctor(c.Request().Context(), c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	if err := h.svc.DeleteDoctor(c.Request().Context(), c.Param("id")); err != nil {
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
