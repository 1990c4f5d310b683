package customer

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	cs "github.com/perpetual-pelican/vidly-backend/service/customer"
)

type Controller struct {
	Svc cs.Service
	V   *validation.Validator
	Log *slog.Logger
}

// GET /api/customers
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("customer list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/customers/:id
func (h *Controller) Detail(c echo.Context) error {
	id, _ := c.Get("id").(string)
	cust, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("customer detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if cust == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The customer with the given ID was not found."})
	}
	return c.JSON(http.StatusOK, cust)
}

// POST /api/customers
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateCustomerReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	cust, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("customer create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// PUT /api/customers/:id
func (h *Controller) Update(c echo.Context) error {
	id, _ := c.Get("id").(string)
	cust, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("customer load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if cust == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The customer with the given ID was not found."})
	}

	var req model.UpdateCustomerReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if req.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one property is required to update customer"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	cust, err = h.Svc.Update(c.Request().Context(), cust, req)
	if err != nil {
		h.Log.Error("customer update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// DELETE /api/customers/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, _ := c.Get("id").(string)
	cust, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("customer load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if cust == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The customer with the given ID was not found."})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("customer delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, cust)
}
