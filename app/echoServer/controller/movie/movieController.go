package movie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	ms "github.com/perpetual-pelican/vidly-backend/service/movie"
)

type Controller struct {
	Svc ms.Service
	V   *validation.Validator
	Log *slog.Logger
}

// GET /api/movies
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("movie list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/movies/:id
func (h *Controller) Detail(c echo.Context) error {
	id, _ := c.Get("id").(string)
	m, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("movie detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The movie with the given ID was not found."})
	}
	return c.JSON(http.StatusOK, m)
}

// POST /api/movies
func (h *Controller) Create(c echo.Context) error {
	var req model.CreateMovieReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	req.Normalize()

	m, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, ms.ErrInvalidGenre) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid genre id"})
		}
		h.Log.Error("movie create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// PUT /api/movies/:id
func (h *Controller) Update(c echo.Context) error {
	id, _ := c.Get("id").(string)
	m, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("movie load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The movie with the given ID was not found."})
	}

	var req model.UpdateMovieReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if req.Empty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one property is required to update movie"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	req.Normalize()

	m, err = h.Svc.Update(c.Request().Context(), m, req)
	if err != nil {
		if errors.Is(err, ms.ErrInvalidGenre) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid genre id"})
		}
		h.Log.Error("movie update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}

// DELETE /api/movies/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, _ := c.Get("id").(string)
	m, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("movie load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if m == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The movie with the given ID was not found."})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("movie delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, m)
}
