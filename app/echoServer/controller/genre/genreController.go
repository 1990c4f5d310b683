package genre

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	gs "github.com/perpetual-pelican/vidly-backend/service/genre"
)

type Controller struct {
	Svc gs.Service
	V   *validation.Validator
	Log *slog.Logger
}

// GET /api/genres
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("genre list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /api/genres/:id
func (h *Controller) Detail(c echo.Context) error {
	id, _ := c.Get("id").(string)
	g, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("genre detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if g == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The genre with the given ID was not found."})
	}
	return c.JSON(http.StatusOK, g)
}

// POST /api/genres
func (h *Controller) Create(c echo.Context) error {
	var req model.GenreReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	g, err := h.Svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, gs.ErrNameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Genre name already exists"})
		}
		h.Log.Error("genre create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}

// PUT /api/genres/:id — a genre is only a name, so the update schema is
// the create schema.
func (h *Controller) Update(c echo.Context) error {
	id, _ := c.Get("id").(string)
	g, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("genre load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if g == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The genre with the given ID was not found."})
	}

	var req model.GenreReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	g, err = h.Svc.Update(c.Request().Context(), g, req.Name)
	if err != nil {
		if errors.Is(err, gs.ErrNameTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Genre name already exists"})
		}
		h.Log.Error("genre update", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}

// DELETE /api/genres/:id (admin)
func (h *Controller) Delete(c echo.Context) error {
	id, _ := c.Get("id").(string)
	g, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("genre load", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if g == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "The genre with the given ID was not found."})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("genre delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, g)
}
