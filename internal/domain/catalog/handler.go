package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves read-only catalog lookups.
type Handler struct {
	reg *Registry
}

func NewHandler(reg *Registry) *Handler {
	return &Handler{reg: reg}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/medications", h.ListMedications)
	api.GET("/medications/:id", h.GetMedication)
	api.GET("/conditions", h.ListConditions)
	api.GET("/conditions/:id", h.GetCondition)
	api.GET("/conditions/:id/protocols/:tier", h.GetProtocol)
}

func (h *Handler) ListMedications(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, h.reg.MedicationsByCategory(category))
	}
	return c.JSON(http.StatusOK, h.reg.SearchMedications(c.QueryParam("q")))
}

func (h *Handler) GetMedication(c echo.Context) error {
	m, ok := h.reg.Medication(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "medication not found")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListConditions(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		return c.JSON(http.StatusOK, h.reg.ConditionsByCategory(category))
	}
	return c.JSON(http.StatusOK, h.reg.SearchConditions(c.QueryParam("q")))
}

func (h *Handler) GetCondition(c echo.Context) error {
	cond, ok := h.reg.Condition(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "condition not found")
	}
	return c.JSON(http.StatusOK, cond)
}

func (h *Handler) GetProtocol(c echo.Context) error {
	tier := Tier(c.Param("tier"))
	if !ValidTier(tier) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tier")
	}
	p, ok := h.reg.Protocol(c.Param("id"), tier)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "protocol not found")
	}
	return c.JSON(http.StatusOK, p)
}
