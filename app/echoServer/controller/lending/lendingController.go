package lending

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/arveereed/simple-library-management/app/echoServer/jwtx"
	"github.com/arveereed/simple-library-management/model"
	ls "github.com/arveereed/simple-library-management/service/lending"
)

type Controller struct {
	Svc ls.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/transactions/checkout
func (h *Controller) Checkout(c echo.Context) error {
	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	uid, _ := jwtx.UserIDFromContext(c)

	tx, err := h.Svc.Checkout(c.Request().Context(), req.BookID, req.StudentID)
	if err != nil {
		h.Log.Error("checkout", "err", err, "book_id", req.BookID, "user_id", uid)
		switch ls.Code(err) {
		case ls.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case ls.ErrStudentNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "student not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, tx)
}

// POST /v1/transactions/:id/return
func (h *Controller) Return(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	uid, _ := jwtx.UserIDFromContext(c)

	snapshot := model.Transaction{
		ID:        id,
		BookID:    req.BookID,
		BookTitle: req.BookTitle,
		StudentID: req.StudentID,
		DueDate:   req.DueDate,
	}
	if err := h.Svc.Return(c.Request().Context(), id, snapshot); err != nil {
		h.Log.Error("return", "err", err, "transaction_id", id, "user_id", uid)
		switch ls.Code(err) {
		case ls.ErrBookNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case ls.ErrTransactionNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "transaction not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "returned"})
}

// GET /v1/transactions
func (h *Controller) ListActive(c echo.Context) error {
	rows, err := h.Svc.ActiveTransactions(c.Request().Context())
	if err != nil {
		h.Log.Error("transactions list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/books/available
func (h *Controller) AvailableBooks(c echo.Context) error {
	rows, err := h.Svc.AvailableBooks(c.Request().Context())
	if err != nil {
		h.Log.Error("available books", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
