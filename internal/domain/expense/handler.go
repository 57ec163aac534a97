package expense

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dentaldesk/dentaldesk/internal/platform/auth"
	"github.com/dentaldesk/dentaldesk/pkg/apperror"
	"github.com/dentaldesk/dentaldesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleBilling))
	g.POST("/expenses", h.Create)
	g.GET("/expenses", h.List)
	g.GET("/expenses/totals", h.Totals)
	g.GET("/expenses/:id", h.Get)
	g.PUT("/expenses/:id", h.Update)
	g.DELETE("/expenses/:id", h.Delete)
}

// dateRange parses ?from= / ?to= (YYYY-MM-DD), defaulting to the current
// month.
func dateRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if f := c.QueryParam("from"); f != "" {
		parsed, err := time.Parse("2006-01-02", f)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "invalid from, want YYYY-MM-DD")
		}
		from = parsed
	}
	if t := c.QueryParam("to"); t != "" {
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return from, to, echo.NewHTTPError(http.StatusBadRequest, "invalid to, want YYYY-MM-DD")
		}
		to = parsed
	}
	return from, to, nil
}

func (h *Handler) Create(c echo.Context) error {
	var e Expense
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.CreatedBy = auth.UserNameFromContext(c.Request().Context())
	if err := h.svc.Create(c.Request().Context(), &e); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	e, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var e Expense
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.ID = id
	if err := h.svc.Update(c.Request().Context(), &e); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) List(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	expenses, total, err := h.svc.List(c.Request().Context(),
		Category(c.QueryParam("category")), from, to, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(apperror.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(expenses, total, pg.Limit, pg.Offset))
}

func (h *Handler) Totals(c echo.Context) error {
	from, to, err := dateRange(c)
	if err != nil {
		return err
	}
	totals, err := h.svc.TotalsByCategory(c.Request().Context(), from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, totals)
}
