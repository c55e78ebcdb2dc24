package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	dashboardsvc "github.com/arveereed/simple-library-management/service/dashboard"
)

type Controller struct {
	Svc dashboardsvc.Service
	Log *slog.Logger
}

// GET /v1/dashboard
func (h *Controller) Summary(c echo.Context) error {
	sum, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		h.Log.Error("dashboard", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data": sum,
		"counts": echo.Map{
			"books":      len(sum.Books),
			"available":  len(sum.Available),
			"checkedOut": len(sum.CheckedOut),
			"overdue":    len(sum.Overdue),
			"borrowers":  len(sum.Borrowers),
		},
	})
}
