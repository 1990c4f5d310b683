package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpetual-pelican/vidly-backend/app/echoServer/validation"
	"github.com/perpetual-pelican/vidly-backend/model"
	authsvc "github.com/perpetual-pelican/vidly-backend/service/auth"
)

type Controller struct {
	Svc authsvc.Service
	V   *validation.Validator
	Log *slog.Logger
}

// Register a new user
// @Summary      Register user
// @Description  Creates a user and returns a token in the x-auth-token header
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "validation error or email already in use"
// @Router       /api/users [post]
func (h *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	u, token, err := h.Svc.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, authsvc.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already in use"})
		}
		h.Log.Error("register failed", "err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	c.Response().Header().Set("x-auth-token", token)
	return c.JSON(http.StatusOK, echo.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	})
}

// Login
// @Summary      Login
// @Description  Login with email and password, returns a JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {string}  string  "token"
// @Failure      400  {object}  map[string]any
// @Router       /api/login [post]
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := validation.BindStrict(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	token, err := h.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCreds) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password"})
		}
		h.Log.Error("login failed", "err", err,
			"req_id", c.Response().Header().Get(echo.HeaderXRequestID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.String(http.StatusOK, token)
}

// GET /api/users/me
func (h *Controller) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	u, err := h.Svc.ByID(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("user me", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if u == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User not found"})
	}
	return c.JSON(http.StatusOK, u)
}

// GET /api/users (admin)
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("user list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}
