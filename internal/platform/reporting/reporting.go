// Package reporting serves the dashboard aggregates. Reports are computed
// fresh from the tables on every request; nothing is cached or
// pre-aggregated.
package reporting

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/dentaldesk/dentaldesk/internal/platform/auth"
)

// MeasureDefinition defines a dashboard measure with its SQL query.
type MeasureDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SQL         string `json:"sql"`
}

// MeasureReport holds the results of evaluating a measure.
type MeasureReport struct {
	MeasureID   string                   `json:"measure_id"`
	MeasureName string                   `json:"measure_name"`
	GeneratedAt time.Time                `json:"generated_at"`
	Results     []map[string]interface{} `json:"results"`
}

// PredefinedMeasures is the list of available dashboard measures.
var PredefinedMeasures = []MeasureDefinition{
	{
		ID:          "revenue-by-day",
		Name:        "Revenue by Day",
		Description: "Payments received per day over the last 30 days",
		SQL: `SELECT received_at::date AS day, COALESCE(SUM(amount), 0) AS revenue
			FROM payments
			WHERE received_at >= NOW() - INTERVAL '30 days'
			GROUP BY day ORDER BY day`,
	},
	{
		ID:          "revenue-by-month",
		Name:        "Revenue by Month",
		Description: "Payments received per month over the last 12 months",
		SQL: `SELECT date_trunc('month', received_at)::date AS month, COALESCE(SUM(amount), 0) AS revenue
			FROM payments
			WHERE received_at >= NOW() - INTERVAL '12 months'
			GROUP BY month ORDER BY month`,
	},
	{
		ID:          "outstanding-receivables",
		Name:        "Outstanding Receivables",
		Description: "Unpaid invoice balances by status",
		SQL: `SELECT status, COUNT(*) AS invoices, COALESCE(SUM(amount_due), 0) AS outstanding
			FROM invoices
			WHERE status IN ('pending', 'partial', 'overdue')
			GROUP BY status ORDER BY outstanding DESC`,
	},
	{
		ID:          "expenses-by-category",
		Name:        "Expenses by Category",
		Description: "Expense totals per category for the current month",
		SQL: `SELECT category, COALESCE(SUM(amount), 0) AS total
			FROM expenses
			WHERE date >= date_trunc('month', NOW())
			GROUP BY category ORDER BY total DESC`,
	},
	{
		ID:          "net-profit-by-month",
		Name:        "Net Profit by Month",
		Description: "Revenue minus expenses per month over the last 12 months",
		SQL: `SELECT month, COALESCE(revenue, 0) AS revenue, COALESCE(spend, 0) AS expenses,
				COALESCE(revenue, 0) - COALESCE(spend, 0) AS net_profit
			FROM (
				SELECT date_trunc('month', received_at)::date AS month, SUM(amount) AS revenue
				FROM payments WHERE received_at >= NOW() - INTERVAL '12 months'
				GROUP BY month
			) r
			FULL OUTER JOIN (
				SELECT date_trunc('month', date)::date AS month, SUM(amount) AS spend
				FROM expenses WHERE date >= NOW() - INTERVAL '12 months'
				GROUP BY month
			) e USING (month)
			ORDER BY month`,
	},
	{
		ID:          "appointments-by-status",
		Name:        "Appointments by Status",
		Description: "Appointment counts by status over the last 30 days",
		SQL: `SELECT status, COUNT(*) AS total
			FROM appointments
			WHERE start_time >= NOW() - INTERVAL '30 days'
			GROUP BY status ORDER BY total DESC`,
	},
	{
		ID:          "prescriptions-issued",
		Name:        "Prescriptions Issued",
		Description: "Prescription counts by status over the last 30 days",
		SQL: `SELECT status, COUNT(*) AS total
			FROM prescriptions
			WHERE issued_at >= NOW() - INTERVAL '30 days'
			GROUP BY status ORDER BY total DESC`,
	},
}

// Handler provides HTTP handlers for the reporting API.
type Handler struct {
	pool *pgxpool.Pool
}

// NewHandler creates a new reporting handler.
func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{pool: pool}
}

// RegisterRoutes registers the reporting API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reports := api.Group("/reports", auth.RequireRole(auth.RoleAdmin, auth.RoleBilling))
	reports.GET("/measures", h.ListMeasures)
	reports.GET("/measures/:id/evaluate", h.EvaluateMeasure)
}

// ListMeasures returns all available measure definitions.
func (h *Handler) ListMeasures(c echo.Context) error {
	return c.JSON(http.StatusOK, PredefinedMeasures)
}

// EvaluateMeasure executes a measure's SQL and returns the results.
func (h *Handler) EvaluateMeasure(c echo.Context) error {
	measure := FindMeasure(c.Param("id"))
	if measure == nil {
		return echo.NewHTTPError(http.StatusNotFound, "measure not found")
	}

	results, err := h.executeSQL(c.Request().Context(), measure.SQL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("query failed: %v", err))
	}

	return c.JSON(http.StatusOK, MeasureReport{
		MeasureID:   measure.ID,
		MeasureName: measure.Name,
		GeneratedAt: time.Now(),
		Results:     results,
	})
}

// executeSQL runs a SQL query and returns results as a slice of maps.
func (h *Handler) executeSQL(ctx context.Context, sql string) ([]map[string]interface{}, error) {
	rows, err := h.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	var results []map[string]interface{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]interface{}, len(fieldDescs))
		for i, fd := range fieldDescs {
			row[string(fd.Name)] = values[i]
		}
		results = append(results, row)
	}

	if results == nil {
		results = []map[string]interface{}{}
	}
	return results, rows.Err()
}

// FindMeasure looks up a measure by ID.
func FindMeasure(id string) *MeasureDefinition {
	for i := range PredefinedMeasures {
		if PredefinedMeasures[i].ID == id {
			return &PredefinedMeasures[i]
		}
	}
	return nil
}
